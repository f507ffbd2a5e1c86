package model

import "time"

// SeasonID uniquely identifies a season
type SeasonID string

// Season scopes all other entities. Every list operation and every
// recompute run works on exactly one season's data.
type Season struct {
	ID     SeasonID
	Name   string
	Year   int
	Active bool

	// SubstituteCounts controls whether the substitute status counts toward
	// the two-appearance lock threshold
	SubstituteCounts bool

	// Fund is the team fund balance in euros
	Fund float64

	CreatedAt time.Time
}
