package eligibility

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/clubtools/spieltag/internal/model"
)

type ColorsSuite struct {
	suite.Suite
	f         *fixture
	countable model.StatusSet
}

func TestColorsSuite(t *testing.T) {
	suite.Run(t, new(ColorsSuite))
}

func (s *ColorsSuite) SetupTest() {
	s.f = newFixture()
	s.countable = DefaultCountable(true)
}

func (s *ColorsSuite) TestLockDrivenColorFromAnchorTeam() {
	player := s.f.player("player-x")
	teamA := s.f.team("team-a", true, true, "#ffd400")

	anchors := LockIndex{player.ID: {TeamID: teamA.ID, Date: "2025-03-15"}}
	changed := LockDrivenColors([]*model.Player{player}, []*model.Team{teamA}, anchors)

	s.Len(changed, 1)
	s.Equal("#ffd400", player.Color)
}

func (s *ColorsSuite) TestLockDrivenSkipsTeamsWithoutColor() {
	player := s.f.player("player-x")
	teamA := s.f.team("team-a", true, true, "")

	anchors := LockIndex{player.ID: {TeamID: teamA.ID, Date: "2025-03-15"}}
	s.Empty(LockDrivenColors([]*model.Player{player}, []*model.Team{teamA}, anchors))
	s.Empty(player.Color)
}

func (s *ColorsSuite) TestThresholdColorsWithoutLock() {
	player := s.f.player("player-x")
	// Lockable but not enforcing: threshold coloring applies even though
	// no assignment will ever be blocked for this team
	teamA := s.f.team("team-a", true, false, "#1e5c94")
	g1 := s.f.game("g1", teamA.ID, "2025-03-01")
	g2 := s.f.game("g2", teamA.ID, "2025-03-15")

	changed := ThresholdColors(
		[]*model.Player{player},
		[]*model.Team{teamA},
		[]*model.Game{g1, g2},
		[]*model.Assignment{
			s.f.assignment("a1", g1, player.ID, model.StatusPlayed),
			s.f.assignment("a2", g2, player.ID, model.StatusPlayed),
		},
		s.countable,
	)

	s.Len(changed, 1)
	s.Equal("#1e5c94", player.Color)
}

func (s *ColorsSuite) TestThresholdRequiresTwoCountableAppearances() {
	player := s.f.player("player-x")
	teamA := s.f.team("team-a", true, false, "#1e5c94")
	g1 := s.f.game("g1", teamA.ID, "2025-03-01")
	g2 := s.f.game("g2", teamA.ID, "2025-03-15")

	changed := ThresholdColors(
		[]*model.Player{player},
		[]*model.Team{teamA},
		[]*model.Game{g1, g2},
		[]*model.Assignment{
			s.f.assignment("a1", g1, player.ID, model.StatusPlayed),
			s.f.assignment("a2", g2, player.ID, model.StatusTentative),
		},
		s.countable,
	)

	s.Empty(changed)
	s.Empty(player.Color)
}

func (s *ColorsSuite) TestColorsAreNeverCleared() {
	player := s.f.player("player-x")
	player.Color = "#22c55e"
	teamA := s.f.team("team-a", true, true, "#ffd400")

	// No anchor, no threshold: the existing color stays
	s.Empty(LockDrivenColors([]*model.Player{player}, []*model.Team{teamA}, LockIndex{}))
	s.Empty(ThresholdColors([]*model.Player{player}, []*model.Team{teamA}, nil, nil, s.countable))
	s.Equal("#22c55e", player.Color)
}

func (s *ColorsSuite) TestFirstTeamToReachThresholdColors() {
	player := s.f.player("player-x")
	teamA := s.f.team("team-a", true, false, "#ffd400")
	teamB := s.f.team("team-b", true, false, "#1e5c94")
	gA1 := s.f.game("ga1", teamA.ID, "2025-03-01")
	gB1 := s.f.game("gb1", teamB.ID, "2025-03-02")
	gA2 := s.f.game("ga2", teamA.ID, "2025-03-10")
	gB2 := s.f.game("gb2", teamB.ID, "2025-03-20")

	changed := ThresholdColors(
		[]*model.Player{player},
		[]*model.Team{teamA, teamB},
		[]*model.Game{gA1, gB1, gA2, gB2},
		[]*model.Assignment{
			s.f.assignment("a1", gA1, player.ID, model.StatusPlayed),
			s.f.assignment("a2", gB1, player.ID, model.StatusPlayed),
			s.f.assignment("a3", gA2, player.ID, model.StatusPlayed),
			s.f.assignment("a4", gB2, player.ID, model.StatusPlayed),
		},
		s.countable,
	)

	s.Len(changed, 1)
	s.Equal("#ffd400", player.Color)
}
