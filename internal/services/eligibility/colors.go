package eligibility

import "github.com/clubtools/spieltag/internal/model"

// Two independent coloring rules are in effect. The lock-driven rule colors
// a player from the team they are locked to; the older threshold rule
// colors a player who reached two countable appearances for a color-bearing
// team even when no lock results (the team may not enforce one). Both rules
// only ever set a color, never clear one.

// ThresholdColors applies the threshold rule and returns the players whose
// color changed. The chronological scan order makes the outcome
// deterministic when a player reaches the threshold for several teams: the
// first team to reach it wins.
func ThresholdColors(
	players []*model.Player,
	teams []*model.Team,
	games []*model.Game,
	assignments []*model.Assignment,
	countable model.StatusSet,
) []*model.Player {
	playersByID := make(map[model.PlayerID]*model.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}
	teamsByID := make(map[model.TeamID]*model.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}
	gamesByID := make(map[model.GameID]*model.Game, len(games))
	for _, g := range games {
		gamesByID[g.ID] = g
	}

	counts := make(map[model.PlayerID]map[model.TeamID]int)
	colored := make(map[model.PlayerID]bool)
	var changed []*model.Player

	for _, a := range sortChronological(assignments) {
		if !countable.Contains(a.Status) {
			continue
		}
		game, ok := gamesByID[a.GameID]
		if !ok {
			continue
		}
		team, ok := teamsByID[game.TeamID]
		if !ok || !team.Lockable || team.LockColor == "" {
			continue
		}

		perTeam := counts[a.PlayerID]
		if perTeam == nil {
			perTeam = make(map[model.TeamID]int)
			counts[a.PlayerID] = perTeam
		}
		perTeam[team.ID]++

		if perTeam[team.ID] != lockThreshold || colored[a.PlayerID] {
			continue
		}
		colored[a.PlayerID] = true

		player := playersByID[a.PlayerID]
		if player == nil || player.Color == team.LockColor {
			continue
		}
		player.Color = team.LockColor
		changed = append(changed, player)
	}

	return changed
}

// LockDrivenColors colors each anchored player with their lock team's color
// and returns the players whose color changed. Applied after the threshold
// rule, so a hard lock wins when both rules would color a player differently.
func LockDrivenColors(players []*model.Player, teams []*model.Team, anchors LockIndex) []*model.Player {
	teamsByID := make(map[model.TeamID]*model.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	var changed []*model.Player
	for _, p := range players {
		anchor, locked := anchors[p.ID]
		if !locked {
			continue
		}
		team, ok := teamsByID[anchor.TeamID]
		if !ok || !team.Lockable || team.LockColor == "" {
			continue
		}
		if p.Color == team.LockColor {
			continue
		}
		p.Color = team.LockColor
		changed = append(changed, p)
	}
	return changed
}
