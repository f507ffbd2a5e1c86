package model

import "time"

// AssignmentID uniquely identifies an assignment
type AssignmentID string

// Assignment links a player to a game. TeamID and Date are denormalized
// copies of the game's fields taken at creation time; the engine falls back
// to the game's values when they are unset.
//
// At most one assignment may exist per (player, date) across all teams;
// this is enforced at creation time by the availability check, not
// retroactively.
type Assignment struct {
	ID       AssignmentID
	SeasonID SeasonID
	GameID   GameID
	TeamID   TeamID
	PlayerID PlayerID
	Date     Date
	Status   Status
	// Finalized marks the line-up as confirmed by a coach
	Finalized bool

	CreatedAt time.Time
}
