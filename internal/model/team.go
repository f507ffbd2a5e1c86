package model

import "time"

// TeamID uniquely identifies a team
type TeamID string

// Team is one of the club's teams within a season.
//
// Lockable controls whether appearances for this team count toward the
// fixed-player rule at all. EnforceLock controls the other direction:
// whether assignments *to this team* that violate another team's lock are
// rewritten to blocked. LockColor is the display color propagated to
// players locked to this team.
type Team struct {
	ID          TeamID
	SeasonID    SeasonID
	Name        string
	Lockable    bool
	EnforceLock bool
	LockColor   string

	CreatedAt time.Time
}
