package roster

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/clubtools/spieltag/internal/dependencies/clock"
	"github.com/clubtools/spieltag/internal/dependencies/random"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/eligibility"
	"github.com/clubtools/spieltag/internal/storage"
)

// Controller manages players, teams, games and assignments. Every mutation
// triggers a full eligibility recompute for the season, so derived lock
// state and blocked statuses are always consistent with the stored data.
type Controller struct {
	storage storage.Storage
	engine  *eligibility.Engine
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new roster controller
func NewController(
	storage storage.Storage,
	engine *eligibility.Engine,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		engine:  engine,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// recompute re-runs the eligibility engine after a mutation. The mutation
// itself has already been persisted; a recompute failure only means derived
// state is stale until the next run, so it is logged, not returned.
func (c *Controller) recompute(ctx context.Context, seasonID model.SeasonID) {
	if _, err := c.engine.Recompute(ctx, seasonID); err != nil {
		c.logger.Error("eligibility recompute failed",
			slog.String("season_id", string(seasonID)),
			slog.String("error", err.Error()),
		)
	}
}

// Player operations

// PlayerParams are the editable fields of a player
type PlayerParams struct {
	FirstName string
	LastName  string
	Rating    string
	Rank      int
	Color     string
}

// CreatePlayer adds a player to the season
func (c *Controller) CreatePlayer(ctx context.Context, seasonID model.SeasonID, params PlayerParams) (*model.Player, error) {
	player := &model.Player{
		ID:        model.PlayerID(random.NewID(c.random)),
		SeasonID:  seasonID,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Rating:    params.Rating,
		Rank:      params.Rank,
		Color:     params.Color,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("player created",
		slog.String("player_id", string(player.ID)),
		slog.String("season_id", string(seasonID)),
	)
	return player, nil
}

// UpdatePlayer edits a player's base fields. Derived lock fields and the
// manual ban are not touched here.
func (c *Controller) UpdatePlayer(ctx context.Context, id model.PlayerID, params PlayerParams) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	player.FirstName = params.FirstName
	player.LastName = params.LastName
	player.Rating = params.Rating
	player.Rank = params.Rank
	player.Color = params.Color

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// DeletePlayer removes a player and all their assignments, then recomputes
func (c *Controller) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := c.storage.GetPlayer(ctx, id)
	if err != nil {
		return err
	}

	assignments, err := c.storage.ListAssignments(ctx, player.SeasonID)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.PlayerID != id {
			continue
		}
		if err := c.storage.DeleteAssignment(ctx, a.ID); err != nil {
			return err
		}
	}

	if err := c.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	c.logger.Info("player deleted", slog.String("player_id", string(id)))
	c.recompute(ctx, player.SeasonID)
	return nil
}

// SetManualBan sets or clears the administrator override banning a player
// from one team. The ban takes precedence over the automatic lock.
func (c *Controller) SetManualBan(ctx context.Context, playerID model.PlayerID, teamID model.TeamID, active bool) (*model.Player, error) {
	player, err := c.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if active {
		if _, err := c.storage.GetTeam(ctx, teamID); err != nil {
			return nil, err
		}
		player.ManualBanTeamID = teamID
		player.ManualBanActive = true
	} else {
		player.ManualBanTeamID = ""
		player.ManualBanActive = false
	}

	if err := c.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	c.logger.Info("manual ban updated",
		slog.String("player_id", string(playerID)),
		slog.String("team_id", string(teamID)),
		slog.Bool("active", active),
	)
	c.recompute(ctx, player.SeasonID)
	return player, nil
}

// ListPlayersSorted returns the season's players ordered by rating (comma
// decimals accepted), then rank (unranked last), then last name
func (c *Controller) ListPlayersSorted(ctx context.Context, seasonID model.SeasonID, descending bool) ([]*model.Player, error) {
	players, err := c.storage.ListPlayers(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(players, func(a, b *model.Player) int {
		ra, rb := parseRating(a.Rating), parseRating(b.Rating)
		if ra != rb {
			less := ra < rb
			if descending {
				less = rb < ra
			}
			if less {
				return -1
			}
			return 1
		}
		if c := compareRank(a.Rank, b.Rank); c != 0 {
			return c
		}
		return strings.Compare(a.LastName, b.LastName)
	})
	return players, nil
}

// parseRating reads a league rating like "8,3"; unparseable ratings sort
// as zero
func parseRating(rating string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(rating, ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// compareRank orders by rank ascending with unranked (0) last
func compareRank(a, b int) int {
	if a == b {
		return 0
	}
	switch {
	case a == 0:
		return 1
	case b == 0:
		return -1
	case a < b:
		return -1
	}
	return 1
}

// Team operations

// TeamParams are the editable fields of a team
type TeamParams struct {
	Name        string
	Lockable    bool
	EnforceLock bool
	LockColor   string
}

// CreateTeam adds a team to the season and recomputes
func (c *Controller) CreateTeam(ctx context.Context, seasonID model.SeasonID, params TeamParams) (*model.Team, error) {
	team := &model.Team{
		ID:          model.TeamID(random.NewID(c.random)),
		SeasonID:    seasonID,
		Name:        params.Name,
		Lockable:    params.Lockable,
		EnforceLock: params.EnforceLock,
		LockColor:   params.LockColor,
		CreatedAt:   c.clock.Now(),
	}

	if err := c.storage.SaveTeam(ctx, team); err != nil {
		return nil, err
	}

	c.logger.Info("team created",
		slog.String("team_id", string(team.ID)),
		slog.String("name", team.Name),
	)
	c.recompute(ctx, seasonID)
	return team, nil
}

// UpdateTeam edits a team and recomputes (lockable/enforce changes can
// change lock anchors and blocked statuses)
func (c *Controller) UpdateTeam(ctx context.Context, id model.TeamID, params TeamParams) (*model.Team, error) {
	team, err := c.storage.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = params.Name
	team.Lockable = params.Lockable
	team.EnforceLock = params.EnforceLock
	team.LockColor = params.LockColor

	if err := c.storage.SaveTeam(ctx, team); err != nil {
		return nil, err
	}

	c.recompute(ctx, team.SeasonID)
	return team, nil
}

// SetTeamEnforce toggles only the enforce flag, the one team field coaches
// may change
func (c *Controller) SetTeamEnforce(ctx context.Context, id model.TeamID, enforce bool) (*model.Team, error) {
	team, err := c.storage.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	team.EnforceLock = enforce
	if err := c.storage.SaveTeam(ctx, team); err != nil {
		return nil, err
	}

	c.recompute(ctx, team.SeasonID)
	return team, nil
}

// DeleteTeam removes a team, its games and their assignments, then recomputes
func (c *Controller) DeleteTeam(ctx context.Context, id model.TeamID) error {
	team, err := c.storage.GetTeam(ctx, id)
	if err != nil {
		return err
	}

	games, err := c.storage.ListGames(ctx, team.SeasonID)
	if err != nil {
		return err
	}
	for _, g := range games {
		if g.TeamID != id {
			continue
		}
		if err := c.deleteGameCascade(ctx, g); err != nil {
			return err
		}
	}

	if err := c.storage.DeleteTeam(ctx, id); err != nil {
		return err
	}

	c.logger.Info("team deleted", slog.String("team_id", string(id)))
	c.recompute(ctx, team.SeasonID)
	return nil
}

// ListTeams returns the season's teams
func (c *Controller) ListTeams(ctx context.Context, seasonID model.SeasonID) ([]*model.Team, error) {
	return c.storage.ListTeams(ctx, seasonID)
}

// Game operations

// GameParams are the editable fields of a game
type GameParams struct {
	TeamID   model.TeamID
	Date     model.Date
	Time     string
	Location string
}

// CreateGame adds a fixture for a team
func (c *Controller) CreateGame(ctx context.Context, seasonID model.SeasonID, params GameParams) (*model.Game, error) {
	if _, err := c.storage.GetTeam(ctx, params.TeamID); err != nil {
		return nil, err
	}

	game := &model.Game{
		ID:        model.GameID(random.NewID(c.random)),
		SeasonID:  seasonID,
		TeamID:    params.TeamID,
		Date:      params.Date,
		Time:      params.Time,
		Location:  params.Location,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("team_id", string(game.TeamID)),
		slog.String("date", game.Date.String()),
	)
	return game, nil
}

// UpdateGame edits a fixture. The denormalized team and date copies on its
// assignments are refreshed so engine joins and availability stay correct,
// then everything is recomputed.
func (c *Controller) UpdateGame(ctx context.Context, id model.GameID, params GameParams) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := c.storage.GetTeam(ctx, params.TeamID); err != nil {
		return nil, err
	}

	refreshAssignments := game.TeamID != params.TeamID || game.Date != params.Date
	game.TeamID = params.TeamID
	game.Date = params.Date
	game.Time = params.Time
	game.Location = params.Location

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	if refreshAssignments {
		assignments, err := c.storage.ListAssignments(ctx, game.SeasonID)
		if err != nil {
			return nil, err
		}
		for _, a := range assignments {
			if a.GameID != id {
				continue
			}
			a.TeamID = game.TeamID
			a.Date = game.Date
			if err := c.storage.SaveAssignment(ctx, a); err != nil {
				return nil, err
			}
		}
	}

	c.recompute(ctx, game.SeasonID)
	return game, nil
}

// DeleteGame removes a fixture and its assignments, then recomputes
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return err
	}

	if err := c.deleteGameCascade(ctx, game); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	c.recompute(ctx, game.SeasonID)
	return nil
}

func (c *Controller) deleteGameCascade(ctx context.Context, game *model.Game) error {
	assignments, err := c.storage.ListAssignments(ctx, game.SeasonID)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.GameID != game.ID {
			continue
		}
		if err := c.storage.DeleteAssignment(ctx, a.ID); err != nil {
			return err
		}
	}
	return c.storage.DeleteGame(ctx, game.ID)
}

// ListGames returns the season's games ordered by date
func (c *Controller) ListGames(ctx context.Context, seasonID model.SeasonID) ([]*model.Game, error) {
	games, err := c.storage.ListGames(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(games, func(a, b *model.Game) int {
		return strings.Compare(string(a.Date), string(b.Date))
	})
	return games, nil
}

// Assignment operations

// CreateAssignment books a player for a game. The availability check runs
// first: a player already assigned anywhere on the game's date is rejected
// with ErrPlayerUnavailable.
func (c *Controller) CreateAssignment(ctx context.Context, gameID model.GameID, playerID model.PlayerID, status model.Status) (*model.Assignment, error) {
	if status == "" {
		status = model.StatusTentative
	}
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if _, err := c.storage.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	free, err := c.engine.CanAssign(ctx, game.SeasonID, playerID, game.Date, "")
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, model.ErrPlayerUnavailable
	}

	assignment := &model.Assignment{
		ID:        model.AssignmentID(random.NewID(c.random)),
		SeasonID:  game.SeasonID,
		GameID:    game.ID,
		TeamID:    game.TeamID,
		PlayerID:  playerID,
		Date:      game.Date,
		Status:    status,
		CreatedAt: c.clock.Now(),
	}

	if err := c.storage.SaveAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	c.logger.Info("assignment created",
		slog.String("assignment_id", string(assignment.ID)),
		slog.String("game_id", string(gameID)),
		slog.String("player_id", string(playerID)),
		slog.String("status", string(status)),
	)
	c.recompute(ctx, game.SeasonID)
	return assignment, nil
}

// SetAssignmentStatus changes an assignment's status. This is also how a
// blocked status is manually corrected; the next recompute re-blocks it if
// the violation still holds.
func (c *Controller) SetAssignmentStatus(ctx context.Context, id model.AssignmentID, status model.Status) (*model.Assignment, error) {
	if !status.Valid() {
		return nil, model.ErrInvalidStatus
	}

	assignment, err := c.storage.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	assignment.Status = status
	if err := c.storage.SaveAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	c.recompute(ctx, assignment.SeasonID)

	// Reload: the recompute may have re-blocked it
	return c.storage.GetAssignment(ctx, id)
}

// SetAssignmentFinalized marks a line-up entry as confirmed
func (c *Controller) SetAssignmentFinalized(ctx context.Context, id model.AssignmentID, finalized bool) (*model.Assignment, error) {
	assignment, err := c.storage.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	assignment.Finalized = finalized
	if err := c.storage.SaveAssignment(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// DeleteAssignment removes a booking and recomputes
func (c *Controller) DeleteAssignment(ctx context.Context, id model.AssignmentID) error {
	assignment, err := c.storage.GetAssignment(ctx, id)
	if err != nil {
		return err
	}

	if err := c.storage.DeleteAssignment(ctx, id); err != nil {
		return err
	}

	c.logger.Info("assignment deleted", slog.String("assignment_id", string(id)))
	c.recompute(ctx, assignment.SeasonID)
	return nil
}

// ListAssignmentsForGame returns a game's assignments in creation order
func (c *Controller) ListAssignmentsForGame(ctx context.Context, gameID model.GameID) ([]*model.Assignment, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	all, err := c.storage.ListAssignments(ctx, game.SeasonID)
	if err != nil {
		return nil, err
	}

	assignments := make([]*model.Assignment, 0)
	for _, a := range all {
		if a.GameID == gameID {
			assignments = append(assignments, a)
		}
	}
	return assignments, nil
}
