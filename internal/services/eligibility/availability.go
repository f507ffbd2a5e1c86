package eligibility

import (
	"context"

	"github.com/clubtools/spieltag/internal/model"
)

// CanAssign reports whether a player is free on the given date, i.e. holds
// no assignment for any team on that calendar day. excludeID, when
// non-empty, ignores one assignment (used when editing an assignment in
// place). Pure query, no side effects; callers must check it before
// creating an assignment and abort on false.
func (e *Engine) CanAssign(
	ctx context.Context,
	seasonID model.SeasonID,
	playerID model.PlayerID,
	date model.Date,
	excludeID model.AssignmentID,
) (bool, error) {
	assignments, err := e.storage.ListAssignments(ctx, seasonID)
	if err != nil {
		return false, err
	}

	for _, a := range assignments {
		if a.PlayerID != playerID {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if a.Date == date {
			return false, nil
		}
	}
	return true, nil
}

// UnavailablePlayerIDs returns every player with an existing assignment on
// the given date, for filtering selection lists.
func (e *Engine) UnavailablePlayerIDs(
	ctx context.Context,
	seasonID model.SeasonID,
	date model.Date,
) (map[model.PlayerID]struct{}, error) {
	assignments, err := e.storage.ListAssignments(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	unavailable := make(map[model.PlayerID]struct{})
	for _, a := range assignments {
		if a.Date == date {
			unavailable[a.PlayerID] = struct{}{}
		}
	}
	return unavailable, nil
}
