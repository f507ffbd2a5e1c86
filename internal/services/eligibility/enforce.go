package eligibility

import "github.com/clubtools/spieltag/internal/model"

// applyLockFields writes the anchor mapping back onto the player records
// and returns the players whose derived fields changed. Locked, LockTeamID
// and LockDate are always overwritten together; players without an anchor
// this run have them cleared.
func applyLockFields(players []*model.Player, anchors LockIndex) []*model.Player {
	var changed []*model.Player
	for _, p := range players {
		anchor, locked := anchors[p.ID]
		if p.Locked == locked && p.LockTeamID == anchor.TeamID && p.LockDate == anchor.Date {
			continue
		}
		p.Locked = locked
		p.LockTeamID = anchor.TeamID
		p.LockDate = anchor.Date
		changed = append(changed, p)
	}
	return changed
}

// applyEnforcement rewrites violating assignments to blocked and returns
// the ones whose status changed.
//
// Per assignment, in order: a manual ban of the player against the
// assignment's team always blocks, regardless of chronology or the
// automatic lock. Otherwise the automatic rule blocks when the player's
// anchor points to a different team, the assignment's team enforces locks,
// and the assignment is dated on or after the anchor date. Blocked status
// is sticky: nothing here ever restores a previous status.
//
// Assignments referencing a missing game, team or player are left untouched.
func applyEnforcement(
	players []*model.Player,
	teams []*model.Team,
	games []*model.Game,
	assignments []*model.Assignment,
	anchors LockIndex,
) []*model.Assignment {
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

	var blocked []*model.Assignment
	block := func(a *model.Assignment) {
		if a.Status != model.StatusBlocked {
			a.Status = model.StatusBlocked
			blocked = append(blocked, a)
		}
	}

	for _, a := range assignments {
		game, ok := gamesByID[a.GameID]
		if !ok {
			continue
		}
		team := teamsByID[game.TeamID]
		player := playersByID[a.PlayerID]
		if team == nil || player == nil {
			continue
		}

		// Manual ban takes precedence over everything
		if player.ManualBanActive && player.ManualBanTeamID == team.ID {
			block(a)
			continue
		}

		anchor, locked := anchors[a.PlayerID]
		if !locked || anchor.TeamID == team.ID || !team.EnforceLock {
			continue
		}

		date := a.Date
		if date.IsZero() {
			date = game.Date
		}
		if date.IsZero() || date.Before(anchor.Date) {
			continue
		}
		block(a)
	}

	return blocked
}
