package model

import "errors"

// Common errors used across the application
var (
	// Entity lookups
	ErrSeasonNotFound     = errors.New("season not found")
	ErrPlayerNotFound     = errors.New("player not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrPenaltyNotFound    = errors.New("penalty not found")
	ErrUserNotFound       = errors.New("user not found")

	// Season errors
	ErrNoCurrentSeason = errors.New("no current season selected")

	// Assignment errors
	ErrPlayerUnavailable = errors.New("player already has an assignment on this date")

	// Validation errors
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidStatus = errors.New("invalid assignment status")
	ErrInvalidRole   = errors.New("invalid role")
)
