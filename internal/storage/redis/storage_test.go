package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/clubtools/spieltag/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Season tests

func (s *StorageSuite) TestSaveAndGetSeason() {
	season := &model.Season{
		ID:               "season-1",
		Name:             "2025/26",
		Year:             2025,
		SubstituteCounts: true,
		Fund:             120.50,
		CreatedAt:        time.Now().UTC(),
	}

	err := s.storage.SaveSeason(s.ctx, season)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSeason(s.ctx, "season-1")
	s.Require().NoError(err)
	s.Equal(season.Name, retrieved.Name)
	s.Equal(season.Fund, retrieved.Fund)
	s.True(retrieved.SubstituteCounts)
}

func (s *StorageSuite) TestGetSeasonNotFound() {
	_, err := s.storage.GetSeason(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSeasonNotFound)
}

func (s *StorageSuite) TestListSeasonsCreationOrder() {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSeason(s.ctx, &model.Season{ID: "season-2", Name: "second", CreatedAt: base.Add(time.Hour)})
	_ = s.storage.SaveSeason(s.ctx, &model.Season{ID: "season-1", Name: "first", CreatedAt: base})

	seasons, err := s.storage.ListSeasons(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(seasons, 2)
	s.Equal(model.SeasonID("season-1"), seasons[0].ID)
	s.Equal(model.SeasonID("season-2"), seasons[1].ID)
}

func (s *StorageSuite) TestDeleteSeason() {
	_ = s.storage.SaveSeason(s.ctx, &model.Season{ID: "season-1"})

	err := s.storage.DeleteSeason(s.ctx, "season-1")
	s.Require().NoError(err)

	_, err = s.storage.GetSeason(s.ctx, "season-1")
	s.ErrorIs(err, model.ErrSeasonNotFound)

	seasons, err := s.storage.ListSeasons(s.ctx)
	s.Require().NoError(err)
	s.Empty(seasons)
}

func (s *StorageSuite) TestCurrentSeasonPointer() {
	_, err := s.storage.GetCurrentSeasonID(s.ctx)
	s.ErrorIs(err, model.ErrNoCurrentSeason)

	err = s.storage.SetCurrentSeasonID(s.ctx, "season-1")
	s.Require().NoError(err)

	id, err := s.storage.GetCurrentSeasonID(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SeasonID("season-1"), id)

	err = s.storage.SetCurrentSeasonID(s.ctx, "")
	s.Require().NoError(err)
	_, err = s.storage.GetCurrentSeasonID(s.ctx)
	s.ErrorIs(err, model.ErrNoCurrentSeason)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:         "player-1",
		SeasonID:   "season-1",
		FirstName:  "Anna",
		LastName:   "Becker",
		Rating:     "8,3",
		Locked:     true,
		LockTeamID: "team-1",
		LockDate:   "2025-03-15",
		CreatedAt:  time.Now().UTC(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.Rating, retrieved.Rating)
	s.True(retrieved.Locked)
	s.Equal(model.Date("2025-03-15"), retrieved.LockDate)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListPlayersScopedToSeason() {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SeasonID: "season-1", CreatedAt: base})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-2", SeasonID: "season-1", CreatedAt: base.Add(time.Minute)})
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-3", SeasonID: "season-2", CreatedAt: base})

	players, err := s.storage.ListPlayers(s.ctx, "season-1")
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("player-1"), players[0].ID)
	s.Equal(model.PlayerID("player-2"), players[1].ID)
}

func (s *StorageSuite) TestDeletePlayerRemovesFromIndex() {
	_ = s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1", SeasonID: "season-1"})

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx, "season-1")
	s.Require().NoError(err)
	s.Empty(players)
}

// Team tests

func (s *StorageSuite) TestSaveAndGetTeam() {
	team := &model.Team{
		ID:          "team-1",
		SeasonID:    "season-1",
		Name:        "Herren I",
		Lockable:    true,
		EnforceLock: true,
		LockColor:   "#cc0000",
	}

	err := s.storage.SaveTeam(s.ctx, team)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetTeam(s.ctx, "team-1")
	s.Require().NoError(err)
	s.Equal("Herren I", retrieved.Name)
	s.True(retrieved.Lockable)
	s.Equal("#cc0000", retrieved.LockColor)
}

func (s *StorageSuite) TestGetTeamNotFound() {
	_, err := s.storage.GetTeam(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:       "game-1",
		SeasonID: "season-1",
		TeamID:   "team-1",
		Date:     "2025-03-01",
		Time:     "14:00",
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.Date("2025-03-01"), retrieved.Date)
	s.Equal("14:00", retrieved.Time)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Assignment tests

func (s *StorageSuite) TestSaveAndGetAssignment() {
	assignment := &model.Assignment{
		ID:        "assignment-1",
		SeasonID:  "season-1",
		GameID:    "game-1",
		TeamID:    "team-1",
		PlayerID:  "player-1",
		Date:      "2025-03-01",
		Status:    model.StatusBlocked,
		Finalized: true,
	}

	err := s.storage.SaveAssignment(s.ctx, assignment)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAssignment(s.ctx, "assignment-1")
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, retrieved.Status)
	s.True(retrieved.Finalized)
}

func (s *StorageSuite) TestGetAssignmentNotFound() {
	_, err := s.storage.GetAssignment(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAssignmentNotFound)
}

func (s *StorageSuite) TestListAssignmentsCreationOrder() {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveAssignment(s.ctx, &model.Assignment{ID: "assignment-2", SeasonID: "season-1", CreatedAt: base.Add(time.Minute)})
	_ = s.storage.SaveAssignment(s.ctx, &model.Assignment{ID: "assignment-1", SeasonID: "season-1", CreatedAt: base})

	assignments, err := s.storage.ListAssignments(s.ctx, "season-1")
	s.Require().NoError(err)
	s.Require().Len(assignments, 2)
	s.Equal(model.AssignmentID("assignment-1"), assignments[0].ID)
	s.Equal(model.AssignmentID("assignment-2"), assignments[1].ID)
}

func (s *StorageSuite) TestDeleteAssignment() {
	_ = s.storage.SaveAssignment(s.ctx, &model.Assignment{ID: "assignment-1", SeasonID: "season-1"})

	err := s.storage.DeleteAssignment(s.ctx, "assignment-1")
	s.Require().NoError(err)

	_, err = s.storage.GetAssignment(s.ctx, "assignment-1")
	s.ErrorIs(err, model.ErrAssignmentNotFound)
}

// Penalty tests

func (s *StorageSuite) TestSaveAndGetPenalty() {
	penalty := &model.Penalty{
		ID:       "penalty-1",
		SeasonID: "season-1",
		Text:     "Training unentschuldigt verpasst",
		Amount:   5,
	}

	err := s.storage.SavePenalty(s.ctx, penalty)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPenalty(s.ctx, "penalty-1")
	s.Require().NoError(err)
	s.Equal(penalty.Text, retrieved.Text)
}

func (s *StorageSuite) TestGetPenaltyNotFound() {
	_, err := s.storage.GetPenalty(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPenaltyNotFound)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Username:     "trainer",
		PasswordHash: "$2a$10$fakehash",
		Role:         model.RoleAdmin,
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("trainer", retrieved.Username)
	s.Equal(model.RoleAdmin, retrieved.Role)
}

func (s *StorageSuite) TestGetUserByUsername() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "trainer", Role: model.RoleCoach})

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "trainer")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)

	_, err = s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeleteUserClearsUsernameIndex() {
	_ = s.storage.SaveUser(s.ctx, &model.User{ID: "user-1", Username: "trainer", Role: model.RoleCoach})

	err := s.storage.DeleteUser(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrUserNotFound)
	_, err = s.storage.GetUserByUsername(s.ctx, "trainer")
	s.ErrorIs(err, model.ErrUserNotFound)
}
