package roster

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

const testSeason = model.SeasonID("season-1")

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	engine     *eligibility.Engine
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.storage = memory.New()
	s.engine = eligibility.NewEngine(s.storage, logger)
	s.clock = mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.engine, s.clock, s.random, logger)
	s.ctx = context.Background()

	season := &model.Season{ID: testSeason, Name: "Test", Year: 2025, Active: true, SubstituteCounts: true}
	s.Require().NoError(s.storage.SaveSeason(s.ctx, season))
}

// tick advances the mock clock so creation order is unambiguous
func (s *ControllerSuite) tick() {
	s.clock.Advance(time.Minute)
}

func (s *ControllerSuite) createTeam(name string, lockable, enforce bool) *model.Team {
	s.tick()
	team, err := s.controller.CreateTeam(s.ctx, testSeason, TeamParams{
		Name: name, Lockable: lockable, EnforceLock: enforce,
	})
	s.Require().NoError(err)
	return team
}

func (s *ControllerSuite) createPlayer(last, rating string) *model.Player {
	s.tick()
	player, err := s.controller.CreatePlayer(s.ctx, testSeason, PlayerParams{
		FirstName: "Test", LastName: last, Rating: rating,
	})
	s.Require().NoError(err)
	return player
}

func (s *ControllerSuite) createGame(team *model.Team, date model.Date) *model.Game {
	s.tick()
	game, err := s.controller.CreateGame(s.ctx, testSeason, GameParams{
		TeamID: team.ID, Date: date, Time: "14:00", Location: "Heim",
	})
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) createAssignment(game *model.Game, playerID model.PlayerID, status model.Status) *model.Assignment {
	s.tick()
	assignment, err := s.controller.CreateAssignment(s.ctx, game.ID, playerID, status)
	s.Require().NoError(err)
	return assignment
}

func (s *ControllerSuite) TestCreateAssignmentDenormalizesGameFields() {
	team := s.createTeam("Herren I", true, true)
	player := s.createPlayer("Demo", "8,1")
	game := s.createGame(team, "2025-03-01")

	assignment := s.createAssignment(game, player.ID, model.StatusTentative)

	s.Equal(team.ID, assignment.TeamID)
	s.Equal(model.Date("2025-03-01"), assignment.Date)
	s.Equal(model.StatusTentative, assignment.Status)
}

func (s *ControllerSuite) TestCreateAssignmentRejectsDoubleBooking() {
	teamA := s.createTeam("Herren I", true, true)
	teamB := s.createTeam("Herren II", true, true)
	player := s.createPlayer("Demo", "8,1")
	gameA := s.createGame(teamA, "2025-03-01")
	gameB := s.createGame(teamB, "2025-03-01")

	s.createAssignment(gameA, player.ID, model.StatusTentative)

	s.tick()
	_, err := s.controller.CreateAssignment(s.ctx, gameB.ID, player.ID, model.StatusTentative)
	s.ErrorIs(err, model.ErrPlayerUnavailable)

	// Only one assignment exists for the date
	assignments, listErr := s.storage.ListAssignments(s.ctx, testSeason)
	s.Require().NoError(listErr)
	s.Len(assignments, 1)
}

func (s *ControllerSuite) TestCreateAssignmentRejectsUnknownStatus() {
	team := s.createTeam("Herren I", true, true)
	player := s.createPlayer("Demo", "8,1")
	game := s.createGame(team, "2025-03-01")

	s.tick()
	_, err := s.controller.CreateAssignment(s.ctx, game.ID, player.ID, "whatever")
	s.ErrorIs(err, model.ErrInvalidStatus)
}

func (s *ControllerSuite) TestSecondAppearanceLocksPlayer() {
	team := s.createTeam("Herren I", true, true)
	player := s.createPlayer("Demo", "8,1")
	g1 := s.createGame(team, "2025-03-01")
	g2 := s.createGame(team, "2025-03-15")

	s.createAssignment(g1, player.ID, model.StatusPlayed)
	s.createAssignment(g2, player.ID, model.StatusPlayed)

	stored, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.True(stored.Locked)
	s.Equal(team.ID, stored.LockTeamID)
	s.Equal(model.Date("2025-03-15"), stored.LockDate)
}

func (s *ControllerSuite) TestLockedPlayerBlockedOnOtherTeam() {
	teamA := s.createTeam("Herren I", true, true)
	teamB := s.createTeam("Herren II", true, true)
	player := s.createPlayer("Demo", "8,1")
	gA1 := s.createGame(teamA, "2025-03-01")
	gA2 := s.createGame(teamA, "2025-03-15")
	gB := s.createGame(teamB, "2025-03-20")

	s.createAssignment(gA1, player.ID, model.StatusPlayed)
	s.createAssignment(gA2, player.ID, model.StatusPlayed)
	violation := s.createAssignment(gB, player.ID, model.StatusPlanned)

	stored, err := s.storage.GetAssignment(s.ctx, violation.ID)
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, stored.Status)
}

func (s *ControllerSuite) TestSetManualBanBlocksExistingAssignments() {
	team := s.createTeam("Herren II", true, false)
	player := s.createPlayer("Demo", "8,1")
	game := s.createGame(team, "2025-03-01")
	assignment := s.createAssignment(game, player.ID, model.StatusPlayed)

	s.tick()
	_, err := s.controller.SetManualBan(s.ctx, player.ID, team.ID, true)
	s.Require().NoError(err)

	stored, err := s.storage.GetAssignment(s.ctx, assignment.ID)
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, stored.Status)
}

func (s *ControllerSuite) TestSetManualBanRequiresExistingTeam() {
	player := s.createPlayer("Demo", "8,1")

	_, err := s.controller.SetManualBan(s.ctx, player.ID, "no-such-team", true)
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *ControllerSuite) TestManualStatusCorrectionIsReBlocked() {
	teamA := s.createTeam("Herren I", true, true)
	teamB := s.createTeam("Herren II", true, true)
	player := s.createPlayer("Demo", "8,1")
	gA1 := s.createGame(teamA, "2025-03-01")
	gA2 := s.createGame(teamA, "2025-03-15")
	gB := s.createGame(teamB, "2025-03-20")

	s.createAssignment(gA1, player.ID, model.StatusPlayed)
	s.createAssignment(gA2, player.ID, model.StatusPlayed)
	violation := s.createAssignment(gB, player.ID, model.StatusPlanned)

	// Setting the status back while the violation still holds is
	// immediately re-blocked by the recompute
	s.tick()
	updated, err := s.controller.SetAssignmentStatus(s.ctx, violation.ID, model.StatusPlanned)
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, updated.Status)
}

func (s *ControllerSuite) TestDeleteGameCascadesAndUnlocks() {
	team := s.createTeam("Herren I", true, true)
	player := s.createPlayer("Demo", "8,1")
	g1 := s.createGame(team, "2025-03-01")
	g2 := s.createGame(team, "2025-03-15")

	s.createAssignment(g1, player.ID, model.StatusPlayed)
	a2 := s.createAssignment(g2, player.ID, model.StatusPlayed)

	s.tick()
	s.Require().NoError(s.controller.DeleteGame(s.ctx, g2.ID))

	_, err := s.storage.GetAssignment(s.ctx, a2.ID)
	s.ErrorIs(err, model.ErrAssignmentNotFound)

	stored, err := s.storage.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.False(stored.Locked)
}

func (s *ControllerSuite) TestDeleteTeamCascadesGamesAndAssignments() {
	team := s.createTeam("Herren I", true, true)
	player := s.createPlayer("Demo", "8,1")
	game := s.createGame(team, "2025-03-01")
	assignment := s.createAssignment(game, player.ID, model.StatusPlayed)

	s.tick()
	s.Require().NoError(s.controller.DeleteTeam(s.ctx, team.ID))

	_, err := s.storage.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
	_, err = s.storage.GetAssignment(s.ctx, assignment.ID)
	s.ErrorIs(err, model.ErrAssignmentNotFound)
}

func (s *ControllerSuite) TestDeletePlayerCascadesAssignments() {
	team := s.createTeam("Herren I", true, true)
	player := s.createPlayer("Demo", "8,1")
	game := s.createGame(team, "2025-03-01")
	assignment := s.createAssignment(game, player.ID, model.StatusPlayed)

	s.tick()
	s.Require().NoError(s.controller.DeletePlayer(s.ctx, player.ID))

	_, err := s.storage.GetAssignment(s.ctx, assignment.ID)
	s.ErrorIs(err, model.ErrAssignmentNotFound)
}

func (s *ControllerSuite) TestUpdateGameRefreshesDenormalizedCopies() {
	teamA := s.createTeam("Herren I", true, true)
	teamB := s.createTeam("Herren II", true, true)
	player := s.createPlayer("Demo", "8,1")
	game := s.createGame(teamA, "2025-03-01")
	assignment := s.createAssignment(game, player.ID, model.StatusTentative)

	s.tick()
	_, err := s.controller.UpdateGame(s.ctx, game.ID, GameParams{
		TeamID: teamB.ID, Date: "2025-03-08", Time: "10:00", Location: "Auswärts",
	})
	s.Require().NoError(err)

	stored, err := s.storage.GetAssignment(s.ctx, assignment.ID)
	s.Require().NoError(err)
	s.Equal(teamB.ID, stored.TeamID)
	s.Equal(model.Date("2025-03-08"), stored.Date)
}

func (s *ControllerSuite) TestListPlayersSortedByRating() {
	s.createPlayer("Zeta", "10,5")
	s.createPlayer("Alpha", "8,3")
	s.createPlayer("Mid", "9,0")

	players, err := s.controller.ListPlayersSorted(s.ctx, testSeason, false)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("Alpha", players[0].LastName)
	s.Equal("Mid", players[1].LastName)
	s.Equal("Zeta", players[2].LastName)

	descending, err := s.controller.ListPlayersSorted(s.ctx, testSeason, true)
	s.Require().NoError(err)
	s.Equal("Zeta", descending[0].LastName)
}

func (s *ControllerSuite) TestListGamesSortedByDate() {
	team := s.createTeam("Herren I", true, true)
	s.createGame(team, "2025-03-15")
	s.createGame(team, "2025-03-01")

	games, err := s.controller.ListGames(s.ctx, testSeason)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.Date("2025-03-01"), games[0].Date)
	s.Equal(model.Date("2025-03-15"), games[1].Date)
}
