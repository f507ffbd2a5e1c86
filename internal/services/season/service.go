package season

import (
	"context"
	"log/slog"

	"github.com/clubtools/spieltag/internal/dependencies/clock"
	"github.com/clubtools/spieltag/internal/dependencies/random"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/eligibility"
	"github.com/clubtools/spieltag/internal/storage"
)

// Service manages seasons, the current-season pointer and per-season
// settings. All other entities are scoped to a season; deleting a season
// cascades over everything in it.
type Service struct {
	storage storage.Storage
	engine  *eligibility.Engine
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new season service
func New(
	storage storage.Storage,
	engine *eligibility.Engine,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		engine:  engine,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Create adds a season. The first season created becomes the current one.
// Substitute appearances count toward the lock threshold by default.
func (s *Service) Create(ctx context.Context, name string, year int) (*model.Season, error) {
	season := &model.Season{
		ID:               model.SeasonID(random.NewID(s.random)),
		Name:             name,
		Year:             year,
		Active:           true,
		SubstituteCounts: true,
		CreatedAt:        s.clock.Now(),
	}

	if err := s.storage.SaveSeason(ctx, season); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetCurrentSeasonID(ctx); err != nil {
		if err := s.storage.SetCurrentSeasonID(ctx, season.ID); err != nil {
			return nil, err
		}
	}

	s.logger.Info("season created",
		slog.String("season_id", string(season.ID)),
		slog.String("name", name),
		slog.Int("year", year),
	)
	return season, nil
}

// List returns all seasons
func (s *Service) List(ctx context.Context) ([]*model.Season, error) {
	return s.storage.ListSeasons(ctx)
}

// Get returns one season
func (s *Service) Get(ctx context.Context, id model.SeasonID) (*model.Season, error) {
	return s.storage.GetSeason(ctx, id)
}

// Current returns the currently selected season
func (s *Service) Current(ctx context.Context) (*model.Season, error) {
	id, err := s.storage.GetCurrentSeasonID(ctx)
	if err != nil {
		return nil, err
	}
	return s.storage.GetSeason(ctx, id)
}

// SetCurrent switches the current-season pointer
func (s *Service) SetCurrent(ctx context.Context, id model.SeasonID) error {
	if _, err := s.storage.GetSeason(ctx, id); err != nil {
		return err
	}
	return s.storage.SetCurrentSeasonID(ctx, id)
}

// SetSubstituteCounts flips whether substitute appearances count toward
// the lock threshold, then recomputes the season
func (s *Service) SetSubstituteCounts(ctx context.Context, id model.SeasonID, counts bool) (*model.Season, error) {
	season, err := s.storage.GetSeason(ctx, id)
	if err != nil {
		return nil, err
	}

	season.SubstituteCounts = counts
	if err := s.storage.SaveSeason(ctx, season); err != nil {
		return nil, err
	}

	if _, err := s.engine.Recompute(ctx, id); err != nil {
		s.logger.Error("eligibility recompute failed",
			slog.String("season_id", string(id)),
			slog.String("error", err.Error()),
		)
	}
	return season, nil
}

// SetFund updates the season's team fund balance
func (s *Service) SetFund(ctx context.Context, id model.SeasonID, amount float64) (*model.Season, error) {
	season, err := s.storage.GetSeason(ctx, id)
	if err != nil {
		return nil, err
	}

	season.Fund = amount
	if err := s.storage.SaveSeason(ctx, season); err != nil {
		return nil, err
	}
	return season, nil
}

// DeleteCascade removes a season and everything in it: assignments, games,
// players, teams and penalties. If the deleted season was current, the
// pointer moves to the first remaining season.
func (s *Service) DeleteCascade(ctx context.Context, id model.SeasonID) error {
	if _, err := s.storage.GetSeason(ctx, id); err != nil {
		return err
	}

	assignments, err := s.storage.ListAssignments(ctx, id)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if err := s.storage.DeleteAssignment(ctx, a.ID); err != nil {
			return err
		}
	}

	games, err := s.storage.ListGames(ctx, id)
	if err != nil {
		return err
	}
	for _, g := range games {
		if err := s.storage.DeleteGame(ctx, g.ID); err != nil {
			return err
		}
	}

	players, err := s.storage.ListPlayers(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range players {
		if err := s.storage.DeletePlayer(ctx, p.ID); err != nil {
			return err
		}
	}

	teams, err := s.storage.ListTeams(ctx, id)
	if err != nil {
		return err
	}
	for _, t := range teams {
		if err := s.storage.DeleteTeam(ctx, t.ID); err != nil {
			return err
		}
	}

	penalties, err := s.storage.ListPenalties(ctx, id)
	if err != nil {
		return err
	}
	for _, p := range penalties {
		if err := s.storage.DeletePenalty(ctx, p.ID); err != nil {
			return err
		}
	}

	if err := s.storage.DeleteSeason(ctx, id); err != nil {
		return err
	}

	current, err := s.storage.GetCurrentSeasonID(ctx)
	if err == nil && current == id {
		remaining, err := s.storage.ListSeasons(ctx)
		if err != nil {
			return err
		}
		next := model.SeasonID("")
		if len(remaining) > 0 {
			next = remaining[0].ID
		}
		if err := s.storage.SetCurrentSeasonID(ctx, next); err != nil {
			return err
		}
	}

	s.logger.Info("season deleted", slog.String("season_id", string(id)))
	return nil
}
