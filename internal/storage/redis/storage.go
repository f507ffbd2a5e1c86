package redis

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Each entity is a JSON value under its own key; per-season SET indexes
// back the fetch-all operations. Records are persistent (no TTLs) since
// club data lives for the whole season. Stale index entries (from a delete
// that raced a save) are skipped on read.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// saveIndexed stores a JSON value and adds its key to an index set
func (s *Storage) saveIndexed(ctx context.Context, key, indexKey string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, indexKey, key)
	_, err = pipe.Exec(ctx)
	return err
}

// deleteIndexed removes a value and its index entry
func (s *Storage) deleteIndexed(ctx context.Context, key, indexKey string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey, key)
	_, err := pipe.Exec(ctx)
	return err
}

// mgetIndex returns the raw JSON values behind an index set, skipping
// entries whose value is gone
func (s *Storage) mgetIndex(ctx context.Context, indexKey string) ([]string, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	raw := make([]string, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		raw = append(raw, val.(string))
	}
	return raw, nil
}

// byCreation orders list results by creation time, then ID; SMembers
// returns members in arbitrary order and the engine needs creation order
func byCreation(createdA, createdB time.Time, idA, idB string) int {
	if c := createdA.Compare(createdB); c != 0 {
		return c
	}
	return strings.Compare(idA, idB)
}

// Season operations

func (s *Storage) SaveSeason(ctx context.Context, season *model.Season) error {
	return s.saveIndexed(ctx, seasonKey(season.ID), seasonsIndexKey(), season)
}

func (s *Storage) GetSeason(ctx context.Context, id model.SeasonID) (*model.Season, error) {
	data, err := s.client.Get(ctx, seasonKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSeasonNotFound
		}
		return nil, err
	}

	var season model.Season
	if err := json.Unmarshal(data, &season); err != nil {
		return nil, err
	}
	return &season, nil
}

func (s *Storage) ListSeasons(ctx context.Context) ([]*model.Season, error) {
	raw, err := s.mgetIndex(ctx, seasonsIndexKey())
	if err != nil {
		return nil, err
	}

	seasons := make([]*model.Season, 0, len(raw))
	for _, val := range raw {
		var season model.Season
		if err := json.Unmarshal([]byte(val), &season); err != nil {
			continue
		}
		seasons = append(seasons, &season)
	}
	slices.SortFunc(seasons, func(a, b *model.Season) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return seasons, nil
}

func (s *Storage) DeleteSeason(ctx context.Context, id model.SeasonID) error {
	return s.deleteIndexed(ctx, seasonKey(id), seasonsIndexKey())
}

func (s *Storage) SetCurrentSeasonID(ctx context.Context, id model.SeasonID) error {
	return s.client.Set(ctx, currentSeasonKey(), string(id), 0).Err()
}

func (s *Storage) GetCurrentSeasonID(ctx context.Context) (model.SeasonID, error) {
	val, err := s.client.Get(ctx, currentSeasonKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrNoCurrentSeason
		}
		return "", err
	}
	if val == "" {
		return "", model.ErrNoCurrentSeason
	}
	return model.SeasonID(val), nil
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	return s.saveIndexed(ctx, playerKey(player.ID), playersForSeasonIndexKey(player.SeasonID), player)
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) ListPlayers(ctx context.Context, seasonID model.SeasonID) ([]*model.Player, error) {
	raw, err := s.mgetIndex(ctx, playersForSeasonIndexKey(seasonID))
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(raw))
	for _, val := range raw {
		var player model.Player
		if err := json.Unmarshal([]byte(val), &player); err != nil {
			continue
		}
		players = append(players, &player)
	}
	slices.SortFunc(players, func(a, b *model.Player) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}
	return s.deleteIndexed(ctx, playerKey(id), playersForSeasonIndexKey(player.SeasonID))
}

// Team operations

func (s *Storage) SaveTeam(ctx context.Context, team *model.Team) error {
	return s.saveIndexed(ctx, teamKey(team.ID), teamsForSeasonIndexKey(team.SeasonID), team)
}

func (s *Storage) GetTeam(ctx context.Context, id model.TeamID) (*model.Team, error) {
	data, err := s.client.Get(ctx, teamKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}

	var team model.Team
	if err := json.Unmarshal(data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *Storage) ListTeams(ctx context.Context, seasonID model.SeasonID) ([]*model.Team, error) {
	raw, err := s.mgetIndex(ctx, teamsForSeasonIndexKey(seasonID))
	if err != nil {
		return nil, err
	}

	teams := make([]*model.Team, 0, len(raw))
	for _, val := range raw {
		var team model.Team
		if err := json.Unmarshal([]byte(val), &team); err != nil {
			continue
		}
		teams = append(teams, &team)
	}
	slices.SortFunc(teams, func(a, b *model.Team) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return teams, nil
}

func (s *Storage) DeleteTeam(ctx context.Context, id model.TeamID) error {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			return nil
		}
		return err
	}
	return s.deleteIndexed(ctx, teamKey(id), teamsForSeasonIndexKey(team.SeasonID))
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	return s.saveIndexed(ctx, gameKey(game.ID), gamesForSeasonIndexKey(game.SeasonID), game)
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGames(ctx context.Context, seasonID model.SeasonID) ([]*model.Game, error) {
	raw, err := s.mgetIndex(ctx, gamesForSeasonIndexKey(seasonID))
	if err != nil {
		return nil, err
	}

	games := make([]*model.Game, 0, len(raw))
	for _, val := range raw {
		var game model.Game
		if err := json.Unmarshal([]byte(val), &game); err != nil {
			continue
		}
		games = append(games, &game)
	}
	slices.SortFunc(games, func(a, b *model.Game) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return games, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			return nil
		}
		return err
	}
	return s.deleteIndexed(ctx, gameKey(id), gamesForSeasonIndexKey(game.SeasonID))
}

// Assignment operations

func (s *Storage) SaveAssignment(ctx context.Context, assignment *model.Assignment) error {
	return s.saveIndexed(ctx, assignmentKey(assignment.ID), assignmentsForSeasonIndexKey(assignment.SeasonID), assignment)
}

func (s *Storage) GetAssignment(ctx context.Context, id model.AssignmentID) (*model.Assignment, error) {
	data, err := s.client.Get(ctx, assignmentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAssignmentNotFound
		}
		return nil, err
	}

	var assignment model.Assignment
	if err := json.Unmarshal(data, &assignment); err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *Storage) ListAssignments(ctx context.Context, seasonID model.SeasonID) ([]*model.Assignment, error) {
	raw, err := s.mgetIndex(ctx, assignmentsForSeasonIndexKey(seasonID))
	if err != nil {
		return nil, err
	}

	assignments := make([]*model.Assignment, 0, len(raw))
	for _, val := range raw {
		var assignment model.Assignment
		if err := json.Unmarshal([]byte(val), &assignment); err != nil {
			continue
		}
		assignments = append(assignments, &assignment)
	}
	slices.SortFunc(assignments, func(a, b *model.Assignment) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return assignments, nil
}

func (s *Storage) DeleteAssignment(ctx context.Context, id model.AssignmentID) error {
	assignment, err := s.GetAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrAssignmentNotFound) {
			return nil
		}
		return err
	}
	return s.deleteIndexed(ctx, assignmentKey(id), assignmentsForSeasonIndexKey(assignment.SeasonID))
}

// Penalty catalogue operations

func (s *Storage) SavePenalty(ctx context.Context, penalty *model.Penalty) error {
	return s.saveIndexed(ctx, penaltyKey(penalty.ID), penaltiesForSeasonIndexKey(penalty.SeasonID), penalty)
}

func (s *Storage) GetPenalty(ctx context.Context, id model.PenaltyID) (*model.Penalty, error) {
	data, err := s.client.Get(ctx, penaltyKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPenaltyNotFound
		}
		return nil, err
	}

	var penalty model.Penalty
	if err := json.Unmarshal(data, &penalty); err != nil {
		return nil, err
	}
	return &penalty, nil
}

func (s *Storage) ListPenalties(ctx context.Context, seasonID model.SeasonID) ([]*model.Penalty, error) {
	raw, err := s.mgetIndex(ctx, penaltiesForSeasonIndexKey(seasonID))
	if err != nil {
		return nil, err
	}

	penalties := make([]*model.Penalty, 0, len(raw))
	for _, val := range raw {
		var penalty model.Penalty
		if err := json.Unmarshal([]byte(val), &penalty); err != nil {
			continue
		}
		penalties = append(penalties, &penalty)
	}
	slices.SortFunc(penalties, func(a, b *model.Penalty) int {
		return byCreation(a.CreatedAt, b.CreatedAt, string(a.ID), string(b.ID))
	})
	return penalties, nil
}

func (s *Storage) DeletePenalty(ctx context.Context, id model.PenaltyID) error {
	penalty, err := s.GetPenalty(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPenaltyNotFound) {
			return nil
		}
		return err
	}
	return s.deleteIndexed(ctx, penaltyKey(id), penaltiesForSeasonIndexKey(penalty.SeasonID))
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + username index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	userIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userIDStr))
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, userKey(id))
	pipe.Del(ctx, usernameIndexKey(user.Username))
	_, err = pipe.Exec(ctx)
	return err
}
