package penalty

import (
	"context"
	"log/slog"

	"github.com/clubtools/spieltag/internal/dependencies/clock"
	"github.com/clubtools/spieltag/internal/dependencies/random"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/storage"
)

// Service manages the season's penalty catalogue
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new penalty service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// List returns the season's penalty entries
func (s *Service) List(ctx context.Context, seasonID model.SeasonID) ([]*model.Penalty, error) {
	return s.storage.ListPenalties(ctx, seasonID)
}

// Create adds a catalogue entry
func (s *Service) Create(ctx context.Context, seasonID model.SeasonID, text string, amount float64) (*model.Penalty, error) {
	penalty := &model.Penalty{
		ID:        model.PenaltyID(random.NewID(s.random)),
		SeasonID:  seasonID,
		Text:      text,
		Amount:    amount,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePenalty(ctx, penalty); err != nil {
		return nil, err
	}
	return penalty, nil
}

// Update edits a catalogue entry
func (s *Service) Update(ctx context.Context, id model.PenaltyID, text string, amount float64) (*model.Penalty, error) {
	penalty, err := s.storage.GetPenalty(ctx, id)
	if err != nil {
		return nil, err
	}

	penalty.Text = text
	penalty.Amount = amount
	if err := s.storage.SavePenalty(ctx, penalty); err != nil {
		return nil, err
	}
	return penalty, nil
}

// Delete removes a catalogue entry
func (s *Service) Delete(ctx context.Context, id model.PenaltyID) error {
	return s.storage.DeletePenalty(ctx, id)
}
