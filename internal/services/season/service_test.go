package season

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/clubtools/spieltag/internal/dependencies/mocks"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/eligibility"
	"github.com/clubtools/spieltag/internal/storage/memory"
)

type SeasonSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestSeasonSuite(t *testing.T) {
	suite.Run(t, new(SeasonSuite))
}

func (s *SeasonSuite) SetupTest() {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.storage = memory.New()
	engine := eligibility.NewEngine(s.storage, logger)
	s.clock = mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, engine, s.clock, mocks.NewMockRandom(), logger)
	s.ctx = context.Background()
}

func (s *SeasonSuite) TestFirstSeasonBecomesCurrent() {
	first, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	_, err = s.service.Create(s.ctx, "2025/26", 2026)
	s.Require().NoError(err)

	current, err := s.service.Current(s.ctx)
	s.Require().NoError(err)
	s.Equal(first.ID, current.ID)
}

func (s *SeasonSuite) TestCreateDefaultsSubstituteCounting() {
	season, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)
	s.True(season.SubstituteCounts)
}

func (s *SeasonSuite) TestCurrentWithoutSeasons() {
	_, err := s.service.Current(s.ctx)
	s.ErrorIs(err, model.ErrNoCurrentSeason)
}

func (s *SeasonSuite) TestSetCurrentRequiresExistingSeason() {
	err := s.service.SetCurrent(s.ctx, "no-such-season")
	s.ErrorIs(err, model.ErrSeasonNotFound)
}

func (s *SeasonSuite) TestSetCurrentSwitchesPointer() {
	_, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := s.service.Create(s.ctx, "2025/26", 2026)
	s.Require().NoError(err)

	s.Require().NoError(s.service.SetCurrent(s.ctx, second.ID))

	current, err := s.service.Current(s.ctx)
	s.Require().NoError(err)
	s.Equal(second.ID, current.ID)
}

func (s *SeasonSuite) TestSetSubstituteCountsPersists() {
	season, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)

	updated, err := s.service.SetSubstituteCounts(s.ctx, season.ID, false)
	s.Require().NoError(err)
	s.False(updated.SubstituteCounts)

	stored, err := s.storage.GetSeason(s.ctx, season.ID)
	s.Require().NoError(err)
	s.False(stored.SubstituteCounts)
}

func (s *SeasonSuite) TestSetFund() {
	season, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)

	updated, err := s.service.SetFund(s.ctx, season.ID, 123.50)
	s.Require().NoError(err)
	s.Equal(123.50, updated.Fund)
}

func (s *SeasonSuite) TestDeleteCascadeRemovesEverything() {
	season, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)

	team := &model.Team{ID: "t1", SeasonID: season.ID, Name: "Herren I", CreatedAt: s.clock.Now()}
	player := &model.Player{ID: "p1", SeasonID: season.ID, LastName: "Demo", CreatedAt: s.clock.Now()}
	game := &model.Game{ID: "g1", SeasonID: season.ID, TeamID: team.ID, Date: "2025-03-01", CreatedAt: s.clock.Now()}
	assignment := &model.Assignment{ID: "a1", SeasonID: season.ID, GameID: game.ID, TeamID: team.ID, PlayerID: player.ID, Date: game.Date, Status: model.StatusPlayed, CreatedAt: s.clock.Now()}
	penalty := &model.Penalty{ID: "pe1", SeasonID: season.ID, Text: "Late", Amount: 5, CreatedAt: s.clock.Now()}

	s.Require().NoError(s.storage.SaveTeam(s.ctx, team))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Require().NoError(s.storage.SaveAssignment(s.ctx, assignment))
	s.Require().NoError(s.storage.SavePenalty(s.ctx, penalty))

	s.Require().NoError(s.service.DeleteCascade(s.ctx, season.ID))

	_, err = s.storage.GetSeason(s.ctx, season.ID)
	s.ErrorIs(err, model.ErrSeasonNotFound)
	_, err = s.storage.GetTeam(s.ctx, team.ID)
	s.ErrorIs(err, model.ErrTeamNotFound)
	_, err = s.storage.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
	_, err = s.storage.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
	_, err = s.storage.GetAssignment(s.ctx, assignment.ID)
	s.ErrorIs(err, model.ErrAssignmentNotFound)
	_, err = s.storage.GetPenalty(s.ctx, penalty.ID)
	s.ErrorIs(err, model.ErrPenaltyNotFound)
}

func (s *SeasonSuite) TestDeleteCurrentMovesPointer() {
	first, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)
	s.clock.Advance(time.Minute)
	second, err := s.service.Create(s.ctx, "2025/26", 2026)
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteCascade(s.ctx, first.ID))

	current, err := s.service.Current(s.ctx)
	s.Require().NoError(err)
	s.Equal(second.ID, current.ID)
}

func (s *SeasonSuite) TestDeleteLastSeasonClearsPointer() {
	season, err := s.service.Create(s.ctx, "2024/25", 2025)
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteCascade(s.ctx, season.ID))

	_, err = s.service.Current(s.ctx)
	s.ErrorIs(err, model.ErrNoCurrentSeason)
}
