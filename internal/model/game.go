package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is a fixture of one team on one date. Games are read-only input to
// the eligibility engine; it joins assignments to their team and date
// through the game.
type Game struct {
	ID       GameID
	SeasonID SeasonID
	TeamID   TeamID
	Date     Date
	Time     string // kick-off time as entered, e.g. "14:00"
	Location string

	CreatedAt time.Time
}
