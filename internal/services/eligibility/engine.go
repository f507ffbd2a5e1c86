package eligibility

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/storage"
)

// Engine is the lock & eligibility engine. Every recompute is a full,
// idempotent replacement derived from the season's current assignment set;
// no incremental state is kept between runs. The engine assumes it is the
// sole writer of derived player fields and assignment statuses at any
// instant; overlapping recomputes degrade to last-write-wins per record.
type Engine struct {
	storage storage.Storage
	logger  *slog.Logger

	mu        sync.RWMutex
	lastIndex LockIndex
}

// NewEngine creates a new eligibility engine
func NewEngine(storage storage.Storage, logger *slog.Logger) *Engine {
	return &Engine{
		storage: storage,
		logger:  logger,
	}
}

// Result describes one recompute run
type Result struct {
	// Anchors is the lock index computed this run
	Anchors LockIndex
	// UpdatedPlayers are players whose derived fields or color changed
	UpdatedPlayers []*model.Player
	// BlockedAssignments are assignments rewritten to blocked this run
	BlockedAssignments []*model.Assignment
	// WriteFailures counts records that could not be persisted; their
	// derived state is stale until the next successful recompute
	WriteFailures int
}

// Recompute rebuilds all derived state for a season: lock anchors, player
// lock fields, blocked assignment statuses and display colors, in that
// order, then refreshes the lock index snapshot.
//
// Persistence is best-effort per record: an individual write failure is
// logged and counted but never aborts the pass. Only the initial snapshot
// fetch can fail the run as a whole.
func (e *Engine) Recompute(ctx context.Context, seasonID model.SeasonID) (*Result, error) {
	substituteCounts := true
	season, err := e.storage.GetSeason(ctx, seasonID)
	switch {
	case err == nil:
		substituteCounts = season.SubstituteCounts
	case errors.Is(err, model.ErrSeasonNotFound):
		// Missing season record: fall back to the default countable set
	default:
		return nil, err
	}
	countable := DefaultCountable(substituteCounts)

	players, err := e.storage.ListPlayers(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	teams, err := e.storage.ListTeams(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	games, err := e.storage.ListGames(ctx, seasonID)
	if err != nil {
		return nil, err
	}
	assignments, err := e.storage.ListAssignments(ctx, seasonID)
	if err != nil {
		return nil, err
	}

	anchors := ComputeLockAnchors(teams, games, assignments, countable)

	// Track changed players by ID so each record is persisted once even
	// when several passes touch it
	changedPlayers := make(map[model.PlayerID]*model.Player)
	for _, p := range applyLockFields(players, anchors) {
		changedPlayers[p.ID] = p
	}

	blocked := applyEnforcement(players, teams, games, assignments, anchors)

	for _, p := range ThresholdColors(players, teams, games, assignments, countable) {
		changedPlayers[p.ID] = p
	}
	for _, p := range LockDrivenColors(players, teams, anchors) {
		changedPlayers[p.ID] = p
	}

	result := &Result{
		Anchors:            anchors,
		BlockedAssignments: blocked,
	}

	// Preserve storage order for the persisted player list
	for _, p := range players {
		if _, ok := changedPlayers[p.ID]; ok {
			result.UpdatedPlayers = append(result.UpdatedPlayers, p)
		}
	}

	for _, p := range result.UpdatedPlayers {
		if err := e.storage.SavePlayer(ctx, p); err != nil {
			result.WriteFailures++
			e.logger.Error("failed to persist player derived state",
				slog.String("player_id", string(p.ID)),
				slog.String("error", err.Error()),
			)
		}
	}
	for _, a := range blocked {
		if err := e.storage.SaveAssignment(ctx, a); err != nil {
			result.WriteFailures++
			e.logger.Error("failed to persist blocked assignment",
				slog.String("assignment_id", string(a.ID)),
				slog.String("error", err.Error()),
			)
		}
	}

	e.mu.Lock()
	e.lastIndex = anchors.Clone()
	e.mu.Unlock()

	e.logger.Info("eligibility recompute complete",
		slog.String("season_id", string(seasonID)),
		slog.Int("locked_players", len(anchors)),
		slog.Int("updated_players", len(result.UpdatedPlayers)),
		slog.Int("blocked_assignments", len(blocked)),
		slog.Int("write_failures", result.WriteFailures),
	)

	return result, nil
}

// LockIndex returns a copy of the last-computed lock index, for rendering
// blocked badges without a recompute. Empty until the first recompute.
func (e *Engine) LockIndex() LockIndex {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastIndex.Clone()
}
