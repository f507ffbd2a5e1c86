package eligibility

import (
	"time"

	"github.com/clubtools/spieltag/internal/model"
)

const testSeason = model.SeasonID("season-1")

// fixture builds entities with increasing creation timestamps, so storage
// and scan order match insertion order in tests
type fixture struct {
	seq  int
	base time.Time
}

func newFixture() *fixture {
	return &fixture{base: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fixture) next() time.Time {
	f.seq++
	return f.base.Add(time.Duration(f.seq) * time.Minute)
}

func (f *fixture) player(id string) *model.Player {
	return &model.Player{
		ID:        model.PlayerID(id),
		SeasonID:  testSeason,
		FirstName: "Test",
		LastName:  id,
		CreatedAt: f.next(),
	}
}

func (f *fixture) team(id string, lockable, enforce bool, color string) *model.Team {
	return &model.Team{
		ID:          model.TeamID(id),
		SeasonID:    testSeason,
		Name:        id,
		Lockable:    lockable,
		EnforceLock: enforce,
		LockColor:   color,
		CreatedAt:   f.next(),
	}
}

func (f *fixture) game(id string, teamID model.TeamID, date model.Date) *model.Game {
	return &model.Game{
		ID:        model.GameID(id),
		SeasonID:  testSeason,
		TeamID:    teamID,
		Date:      date,
		CreatedAt: f.next(),
	}
}

func (f *fixture) assignment(id string, g *model.Game, playerID model.PlayerID, status model.Status) *model.Assignment {
	return &model.Assignment{
		ID:        model.AssignmentID(id),
		SeasonID:  testSeason,
		GameID:    g.ID,
		TeamID:    g.TeamID,
		PlayerID:  playerID,
		Date:      g.Date,
		Status:    status,
		CreatedAt: f.next(),
	}
}
