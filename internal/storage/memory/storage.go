package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	seasons       map[model.SeasonID]*model.Season
	currentSeason model.SeasonID
	players       map[model.PlayerID]*model.Player
	teams         map[model.TeamID]*model.Team
	games         map[model.GameID]*model.Game
	assignments   map[model.AssignmentID]*model.Assignment
	penalties     map[model.PenaltyID]*model.Penalty
	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		seasons:       make(map[model.SeasonID]*model.Season),
		players:       make(map[model.PlayerID]*model.Player),
		teams:         make(map[model.TeamID]*model.Team),
		games:         make(map[model.GameID]*model.Game),
		assignments:   make(map[model.AssignmentID]*model.Assignment),
		penalties:     make(map[model.PenaltyID]*model.Penalty),
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// byCreation orders list results by creation time, then ID. Map iteration
// order is random; the engine's tie-breaking needs creation order.
func byCreation(createdA, createdB time.Time, idA, idB string) int {
	if c := createdA.Compare(createdB); c != 0 {
		return c
	}
	return strings.Compare(idA, idB)
}

// Season operations

func (s *Storage) SaveSeason(ctx context.Context, season *model.Season) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons[season.ID] = season
	return nil
}

func (s *Storage) GetSeason(ctx context.Context, id model.SeasonID) (*model.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	season, ok := s.seasons[id]
	if !ok {
		return nil, model.ErrSeasonNotFound
	}
	return season, nil
}

func (s *Storage) ListSeasons(ctx context.Context) ([]*model.Season, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seasons := make([]*model.Season, 0, len(s.seasons))
	for _, season := range s.seasons {
		seasons = append(seasons, season)
	}
	slices.SortFunc(seasons, func(a, b *model.Season) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return seasons, nil
}

func (s *Storage) DeleteSeason(ctx context.Context, id model.SeasonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seasons, id)
	return nil
}

func (s *Storage) SetCurrentSeasonID(ctx context.Context, id model.SeasonID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentSeason = id
	return nil
}

func (s *Storage) GetCurrentSeasonID(ctx context.Context) (model.SeasonID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentSeason == "" {
		return "", model.ErrNoCurrentSeason
	}
	return s.currentSeason, nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context, seasonID model.SeasonID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0)
	for _, p := range s.players {
		if p.SeasonID == seasonID {
			players = append(players, p)
		}
	}
	slices.SortFunc(players, func(a, b *model.Player) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
	return nil
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return team, nil
}

func (s *Storage) ListTeams(ctx context.Context, seasonID model.SeasonID) ([]*model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]*model.Team, 0)
	for _, t := range s.teams {
		if t.SeasonID == seasonID {
			teams = append(teams, t)
		}
	}
	slices.SortFunc(teams, func(a, b *model.Team) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return teams, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
	return nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) ListGames(ctx context.Context, seasonID model.SeasonID) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0)
	for _, g := range s.games {
		if g.SeasonID == seasonID {
			games = append(games, g)
		}
	}
	slices.SortFunc(games, func(a, b *model.Game) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Assignment operations

func (s *Storage) SaveAssignment(ctx context.Context, assignment *model.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments[assignment.ID] = assignment
	return nil
}

func (s *Storage) GetAssignment(ctx context.Context, id model.AssignmentID) (*model.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignment, ok := s.assignments[id]
	if !ok {
		return nil, model.ErrAssignmentNotFound
	}
	return assignment, nil
}

func (s *Storage) ListAssignments(ctx context.Context, seasonID model.SeasonID) ([]*model.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assignments := make([]*model.Assignment, 0)
	for _, a := range s.assignments {
		if a.SeasonID == seasonID {
			assignments = append(assignments, a)
		}
	}
	slices.SortFunc(assignments, func(a, b *model.Assignment) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return assignments, nil
}

func (s *Storage) DeleteAssignment(ctx context.Context, id model.AssignmentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assignments, id)
	return nil
}

// Penalty catalogue operations

func (s *Storage) SavePenalty(ctx context.Context, penalty *model.Penalty) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.penalties[penalty.ID] = penalty
	return nil
}

func (s *Storage) GetPenalty(ctx context.Context, id model.PenaltyID) (*model.Penalty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	penalty, ok := s.penalties[id]
	if !ok {
		return nil, model.ErrPenaltyNotFound
	}
	return penalty, nil
}

func (s *Storage) ListPenalties(ctx context.Context, seasonID model.SeasonID) ([]*model.Penalty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	penalties := make([]*model.Penalty, 0)
	for _, p := range s.penalties {
		if p.SeasonID == seasonID {
			penalties = append(penalties, p)
		}
	}
	slices.SortFunc(penalties, func(a, b *model.Penalty) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return penalties, nil
}

func (s *Storage) DeletePenalty(ctx context.Context, id model.PenaltyID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.penalties, id)
	return nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[id]; ok {
		delete(s.usernameIndex, user.Username)
	}
	delete(s.users, id)
	return nil
}
