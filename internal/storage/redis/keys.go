package redis

import (
	"fmt"

	"github.com/clubtools/spieltag/internal/model"
)

// Key prefix for all club data
const keyPrefix = "spieltag"

// Key generation functions for each entity type

// seasonKey returns the Redis key for a Season
func seasonKey(id model.SeasonID) string {
	return fmt.Sprintf("%s:season:%s", keyPrefix, id)
}

// seasonsIndexKey returns the Redis key for the SET of all season keys
func seasonsIndexKey() string {
	return fmt.Sprintf("%s:idx:seasons", keyPrefix)
}

// currentSeasonKey returns the Redis key holding the current-season pointer
func currentSeasonKey() string {
	return fmt.Sprintf("%s:current_season", keyPrefix)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersForSeasonIndexKey returns the Redis key for the SET of player keys in a season
func playersForSeasonIndexKey(seasonID model.SeasonID) string {
	return fmt.Sprintf("%s:idx:players_for_season:%s", keyPrefix, seasonID)
}

// teamKey returns the Redis key for a Team
func teamKey(id model.TeamID) string {
	return fmt.Sprintf("%s:team:%s", keyPrefix, id)
}

// teamsForSeasonIndexKey returns the Redis key for the SET of team keys in a season
func teamsForSeasonIndexKey(seasonID model.SeasonID) string {
	return fmt.Sprintf("%s:idx:teams_for_season:%s", keyPrefix, seasonID)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesForSeasonIndexKey returns the Redis key for the SET of game keys in a season
func gamesForSeasonIndexKey(seasonID model.SeasonID) string {
	return fmt.Sprintf("%s:idx:games_for_season:%s", keyPrefix, seasonID)
}

// assignmentKey returns the Redis key for an Assignment
func assignmentKey(id model.AssignmentID) string {
	return fmt.Sprintf("%s:assignment:%s", keyPrefix, id)
}

// assignmentsForSeasonIndexKey returns the Redis key for the SET of assignment keys in a season
func assignmentsForSeasonIndexKey(seasonID model.SeasonID) string {
	return fmt.Sprintf("%s:idx:assignments_for_season:%s", keyPrefix, seasonID)
}

// penaltyKey returns the Redis key for a Penalty
func penaltyKey(id model.PenaltyID) string {
	return fmt.Sprintf("%s:penalty:%s", keyPrefix, id)
}

// penaltiesForSeasonIndexKey returns the Redis key for the SET of penalty keys in a season
func penaltiesForSeasonIndexKey(seasonID model.SeasonID) string {
	return fmt.Sprintf("%s:idx:penalties_for_season:%s", keyPrefix, seasonID)
}

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// usernameIndexKey returns the Redis key for the username -> user_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}
