package model

import "time"

// PlayerID uniquely identifies a player
type PlayerID string

// Player is a club member who can be assigned to team games.
//
// The lock fields (Locked, LockTeamID, LockDate) are derived state owned by
// the eligibility engine: they are always recomputed together from the full
// assignment history and never edited directly. Locked is true iff LockTeamID
// is set, and LockDate is set iff Locked is true.
//
// The manual ban fields are an administrator override and are never derived;
// an active ban forces every assignment of this player to the banned team
// into the blocked status, taking precedence over the automatic lock.
type Player struct {
	ID        PlayerID
	SeasonID  SeasonID
	FirstName string
	LastName  string
	Rating    string // league rating as entered, e.g. "8,3" (comma decimal)
	Rank      int    // manual tie-break; 0 means unranked and sorts last
	Color     string // display color (hex), set by color propagation

	Locked     bool
	LockTeamID TeamID
	LockDate   Date

	ManualBanTeamID TeamID
	ManualBanActive bool

	CreatedAt time.Time
}

// DisplayName returns the player's full name
func (p *Player) DisplayName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
