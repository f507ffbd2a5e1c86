package model

import "time"

// PenaltyID uniquely identifies a penalty catalogue entry
type PenaltyID string

// Penalty is an entry in the season's penalty catalogue
// (missed training, late cancellation, ...)
type Penalty struct {
	ID       PenaltyID
	SeasonID SeasonID
	Text     string
	Amount   float64

	CreatedAt time.Time
}
