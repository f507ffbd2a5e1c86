package eligibility

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/storage"
	"github.com/clubtools/spieltag/internal/storage/memory"
)

type EngineSuite struct {
	suite.Suite
	storage *memory.Storage
	engine  *Engine
	f       *fixture
	ctx     context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.storage = memory.New()
	s.engine = NewEngine(s.storage, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	s.f = newFixture()
	s.ctx = context.Background()
}

func (s *EngineSuite) save(entities ...any) {
	for _, e := range entities {
		var err error
		switch v := e.(type) {
		case *model.Season:
			err = s.storage.SaveSeason(s.ctx, v)
		case *model.Player:
			err = s.storage.SavePlayer(s.ctx, v)
		case *model.Team:
			err = s.storage.SaveTeam(s.ctx, v)
		case *model.Game:
			err = s.storage.SaveGame(s.ctx, v)
		case *model.Assignment:
			err = s.storage.SaveAssignment(s.ctx, v)
		default:
			s.FailNow("unknown entity type")
		}
		s.Require().NoError(err)
	}
}

func (s *EngineSuite) season() *model.Season {
	return &model.Season{ID: testSeason, Name: "Test", Year: 2025, Active: true, SubstituteCounts: true}
}

// seedLockScenario sets up player X with two played appearances for
// lockable team A (2025-03-01, 2025-03-15) and returns both teams
func (s *EngineSuite) seedLockScenario(enforceB bool) (*model.Team, *model.Team) {
	teamA := s.f.team("team-a", true, true, "")
	teamB := s.f.team("team-b", true, enforceB, "")
	gA1 := s.f.game("ga1", teamA.ID, "2025-03-01")
	gA2 := s.f.game("ga2", teamA.ID, "2025-03-15")
	s.save(s.season(), s.f.player("player-x"), teamA, teamB, gA1, gA2,
		s.f.assignment("a1", gA1, "player-x", model.StatusPlayed),
		s.f.assignment("a2", gA2, "player-x", model.StatusPlayed),
	)
	return teamA, teamB
}

func (s *EngineSuite) TestRecomputeBlocksLaterAssignmentToEnforcingTeam() {
	_, teamB := s.seedLockScenario(true)
	gB := s.f.game("gb", teamB.ID, "2025-03-20")
	s.save(gB, s.f.assignment("a3", gB, "player-x", model.StatusPlanned))

	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	s.Len(result.BlockedAssignments, 1)
	stored, err := s.storage.GetAssignment(s.ctx, "a3")
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, stored.Status)
}

func (s *EngineSuite) TestRecomputeLeavesEarlierAssignmentAlone() {
	_, teamB := s.seedLockScenario(true)
	gB := s.f.game("gb", teamB.ID, "2025-02-10")
	s.save(gB, s.f.assignment("a3", gB, "player-x", model.StatusPlanned))

	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	s.Empty(result.BlockedAssignments)
	stored, err := s.storage.GetAssignment(s.ctx, "a3")
	s.Require().NoError(err)
	s.Equal(model.StatusPlanned, stored.Status)
}

func (s *EngineSuite) TestRecomputeRespectsEnforceFlagOff() {
	_, teamB := s.seedLockScenario(false)
	gB := s.f.game("gb", teamB.ID, "2025-03-20")
	s.save(gB, s.f.assignment("a3", gB, "player-x", model.StatusPlanned))

	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	s.Empty(result.BlockedAssignments)
	stored, err := s.storage.GetAssignment(s.ctx, "a3")
	s.Require().NoError(err)
	s.Equal(model.StatusPlanned, stored.Status)
}

func (s *EngineSuite) TestRecomputeWritesPlayerLockFields() {
	teamA, _ := s.seedLockScenario(true)

	_, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-x")
	s.Require().NoError(err)
	s.True(player.Locked)
	s.Equal(teamA.ID, player.LockTeamID)
	s.Equal(model.Date("2025-03-15"), player.LockDate)
}

func (s *EngineSuite) TestRecomputeClearsStaleLockFields() {
	s.seedLockScenario(true)

	_, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	// Removing the second appearance dissolves the anchor
	s.Require().NoError(s.storage.DeleteAssignment(s.ctx, "a2"))
	_, err = s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-x")
	s.Require().NoError(err)
	s.False(player.Locked)
	s.Empty(player.LockTeamID)
	s.True(player.LockDate.IsZero())
}

func (s *EngineSuite) TestRecomputeIsIdempotent() {
	_, teamB := s.seedLockScenario(true)
	gB := s.f.game("gb", teamB.ID, "2025-03-20")
	s.save(gB, s.f.assignment("a3", gB, "player-x", model.StatusPlanned))

	_, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	playersAfterFirst, err := s.storage.ListPlayers(s.ctx, testSeason)
	s.Require().NoError(err)
	assignmentsAfterFirst, err := s.storage.ListAssignments(s.ctx, testSeason)
	s.Require().NoError(err)

	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	// Second run changes nothing
	s.Empty(result.UpdatedPlayers)
	s.Empty(result.BlockedAssignments)

	playersAfterSecond, err := s.storage.ListPlayers(s.ctx, testSeason)
	s.Require().NoError(err)
	assignmentsAfterSecond, err := s.storage.ListAssignments(s.ctx, testSeason)
	s.Require().NoError(err)
	s.Equal(playersAfterFirst, playersAfterSecond)
	s.Equal(assignmentsAfterFirst, assignmentsAfterSecond)
}

func (s *EngineSuite) TestBlockedStatusIsSticky() {
	_, teamB := s.seedLockScenario(true)
	gB := s.f.game("gb", teamB.ID, "2025-03-20")
	s.save(gB, s.f.assignment("a3", gB, "player-x", model.StatusPlanned))

	_, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	// Turning the enforce flag off afterwards does not restore the
	// status; correction is a manual edit
	teamB.EnforceLock = false
	s.Require().NoError(s.storage.SaveTeam(s.ctx, teamB))
	_, err = s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	stored, err := s.storage.GetAssignment(s.ctx, "a3")
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, stored.Status)
}

func (s *EngineSuite) TestManualBanPrecedence() {
	player := s.f.player("player-x")
	player.ManualBanTeamID = "team-b"
	player.ManualBanActive = true
	teamB := s.f.team("team-b", true, false, "")
	gB := s.f.game("gb", teamB.ID, "2025-01-10")
	s.save(s.season(), player, teamB, gB,
		s.f.assignment("a1", gB, player.ID, model.StatusPlayed))

	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	s.Len(result.BlockedAssignments, 1)
	stored, err := s.storage.GetAssignment(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, stored.Status)
}

func (s *EngineSuite) TestColorPropagationOnLock() {
	teamA := s.f.team("team-a", true, true, "#ffd400")
	gA1 := s.f.game("ga1", teamA.ID, "2025-03-01")
	gA2 := s.f.game("ga2", teamA.ID, "2025-03-15")
	s.save(s.season(), s.f.player("player-x"), teamA, gA1, gA2,
		s.f.assignment("a1", gA1, "player-x", model.StatusPlayed),
		s.f.assignment("a2", gA2, "player-x", model.StatusPlayed),
	)

	_, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	player, err := s.storage.GetPlayer(s.ctx, "player-x")
	s.Require().NoError(err)
	s.Equal("#ffd400", player.Color)
}

func (s *EngineSuite) TestSubstituteToggleFromSeasonSettings() {
	season := s.season()
	season.SubstituteCounts = false
	teamA := s.f.team("team-a", true, true, "")
	gA1 := s.f.game("ga1", teamA.ID, "2025-03-01")
	gA2 := s.f.game("ga2", teamA.ID, "2025-03-15")
	s.save(season, s.f.player("player-x"), teamA, gA1, gA2,
		s.f.assignment("a1", gA1, "player-x", model.StatusSubstitute),
		s.f.assignment("a2", gA2, "player-x", model.StatusPlayed),
	)

	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	s.Empty(result.Anchors)
}

func (s *EngineSuite) TestLockIndexSnapshot() {
	s.Empty(s.engine.LockIndex())

	teamA, _ := s.seedLockScenario(true)
	result, err := s.engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	index := s.engine.LockIndex()
	s.Equal(result.Anchors, index)
	s.Equal(Anchor{TeamID: teamA.ID, Date: "2025-03-15"}, index["player-x"])

	// The snapshot is a copy; mutating it does not affect the engine
	delete(index, "player-x")
	s.Contains(s.engine.LockIndex(), model.PlayerID("player-x"))
}

// failingStorage fails every player save, to exercise best-effort persistence
type failingStorage struct {
	storage.Storage
}

func (f *failingStorage) SavePlayer(ctx context.Context, player *model.Player) error {
	return errors.New("write refused")
}

func (s *EngineSuite) TestWriteFailuresDoNotAbortThePass() {
	_, teamB := s.seedLockScenario(true)
	gB := s.f.game("gb", teamB.ID, "2025-03-20")
	s.save(gB, s.f.assignment("a3", gB, "player-x", model.StatusPlanned))

	engine := NewEngine(&failingStorage{Storage: s.storage}, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	result, err := engine.Recompute(s.ctx, testSeason)
	s.Require().NoError(err)

	// The player write failed but the assignment was still rewritten
	s.Equal(1, result.WriteFailures)
	stored, err := s.storage.GetAssignment(s.ctx, "a3")
	s.Require().NoError(err)
	s.Equal(model.StatusBlocked, stored.Status)
}
