package model

// Status is an assignment's participation status
type Status string

const (
	// StatusTentative is a provisional yes from the player
	StatusTentative Status = "tentative"
	// StatusPlanned means the player is in the planned line-up
	StatusPlanned Status = "planned"
	// StatusSubstitute means the player appeared as a substitute
	StatusSubstitute Status = "substitute"
	// StatusPlayed means the player actually played
	StatusPlayed Status = "played"
	// StatusBlocked marks an assignment that violates a lock or ban; it is
	// written by the eligibility engine, never chosen by a coach
	StatusBlocked Status = "blocked"
)

var validStatuses = map[Status]struct{}{
	StatusTentative:  {},
	StatusPlanned:    {},
	StatusSubstitute: {},
	StatusPlayed:     {},
	StatusBlocked:    {},
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	_, ok := validStatuses[s]
	return ok
}

// StatusSet is a set of statuses, used for the countable set of the
// fixed-player rule
type StatusSet map[Status]struct{}

// NewStatusSet builds a set from its members
func NewStatusSet(statuses ...Status) StatusSet {
	set := make(StatusSet, len(statuses))
	for _, s := range statuses {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether s is in the set
func (set StatusSet) Contains(s Status) bool {
	_, ok := set[s]
	return ok
}
