package eligibility

import (
	"slices"
	"strings"

	"github.com/clubtools/spieltag/internal/model"
)

// Anchor is the (team, date) pair at which a player's fixed-player lock
// takes effect: the team whose second countable appearance was reached, and
// the date of that second appearance.
type Anchor struct {
	TeamID model.TeamID
	Date   model.Date
}

// LockIndex maps players to their lock anchors
type LockIndex map[model.PlayerID]Anchor

// Clone returns a copy of the index
func (ix LockIndex) Clone() LockIndex {
	clone := make(LockIndex, len(ix))
	for id, anchor := range ix {
		clone[id] = anchor
	}
	return clone
}

// lockThreshold is the appearance count at which a player becomes fixed to
// a team for the rest of the season
const lockThreshold = 2

// DefaultCountable returns the set of statuses that count toward the lock
// threshold. Substitute appearances are included or not per the season's
// setting.
func DefaultCountable(substituteCounts bool) model.StatusSet {
	if substituteCounts {
		return model.NewStatusSet(model.StatusPlanned, model.StatusSubstitute, model.StatusPlayed)
	}
	return model.NewStatusSet(model.StatusPlanned, model.StatusPlayed)
}

// ComputeLockAnchors scans all assignments chronologically and determines,
// per player, the team the player is locked to and the date the lock takes
// effect.
//
// Only assignments with a countable status whose game belongs to a lockable
// team are considered. The first team for which a player's running count
// reaches the threshold becomes the anchor; once set, a later-reaching team
// never overwrites it. Assignments referencing a missing game or team are
// skipped silently.
//
// The result is a fresh map computed from scratch; it replaces any previous
// result entirely.
func ComputeLockAnchors(
	teams []*model.Team,
	games []*model.Game,
	assignments []*model.Assignment,
	countable model.StatusSet,
) LockIndex {
	teamsByID := make(map[model.TeamID]*model.Team, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}
	gamesByID := make(map[model.GameID]*model.Game, len(games))
	for _, g := range games {
		gamesByID[g.ID] = g
	}

	anchors := make(LockIndex)
	counts := make(map[model.PlayerID]map[model.TeamID]int)

	for _, a := range sortChronological(assignments) {
		if !countable.Contains(a.Status) {
			continue
		}
		game, ok := gamesByID[a.GameID]
		if !ok {
			continue
		}
		team, ok := teamsByID[game.TeamID]
		if !ok || !team.Lockable {
			continue
		}

		perTeam := counts[a.PlayerID]
		if perTeam == nil {
			perTeam = make(map[model.TeamID]int)
			counts[a.PlayerID] = perTeam
		}
		perTeam[team.ID]++

		if perTeam[team.ID] == lockThreshold {
			if _, locked := anchors[a.PlayerID]; !locked {
				date := a.Date
				if date.IsZero() {
					date = game.Date
				}
				anchors[a.PlayerID] = Anchor{TeamID: team.ID, Date: date}
			}
		}
	}

	return anchors
}

// sortChronological orders assignments by date ascending. Ties are broken
// by creation time and then ID, so the scan order is deterministic and
// independent of storage iteration order; an unset date sorts first.
func sortChronological(assignments []*model.Assignment) []*model.Assignment {
	sorted := slices.Clone(assignments)
	slices.SortStableFunc(sorted, func(a, b *model.Assignment) int {
		if c := strings.Compare(string(a.Date), string(b.Date)); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return sorted
}
