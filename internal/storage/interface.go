package storage

import (
	"context"

	"github.com/clubtools/spieltag/internal/model"
)

// Storage defines the interface for data persistence.
//
// List operations are scoped to one season and return records in creation
// order (CreatedAt, then ID). The eligibility engine depends on a
// deterministic scan order for its same-date tie-breaking, so backends must
// not return records in arbitrary iteration order.
type Storage interface {
	// Season operations
	SaveSeason(ctx context.Context, season *model.Season) error
	GetSeason(ctx context.Context, id model.SeasonID) (*model.Season, error)
	ListSeasons(ctx context.Context) ([]*model.Season, error)
	DeleteSeason(ctx context.Context, id model.SeasonID) error

	// Current-season pointer
	SetCurrentSeasonID(ctx context.Context, id model.SeasonID) error
	GetCurrentSeasonID(ctx context.Context) (model.SeasonID, error)

	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context, seasonID model.SeasonID) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Team operations
	SaveTeam(ctx context.Context, team *model.Team) error
	GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error)
	ListTeams(ctx context.Context, seasonID model.SeasonID) ([]*model.Team, error)
	DeleteTeam(ctx context.Context, id model.TeamID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context, seasonID model.SeasonID) ([]*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Assignment operations
	SaveAssignment(ctx context.Context, assignment *model.Assignment) error
	GetAssignment(ctx context.Context, id model.AssignmentID) (*model.Assignment, error)
	ListAssignments(ctx context.Context, seasonID model.SeasonID) ([]*model.Assignment, error)
	DeleteAssignment(ctx context.Context, id model.AssignmentID) error

	// Penalty catalogue operations
	SavePenalty(ctx context.Context, penalty *model.Penalty) error
	GetPenalty(ctx context.Context, id model.PenaltyID) (*model.Penalty, error)
	ListPenalties(ctx context.Context, seasonID model.SeasonID) ([]*model.Penalty, error)
	DeletePenalty(ctx context.Context, id model.PenaltyID) error

	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error
}
