package handler

import (
	"net/http"
	"sort"

	"github.com/clubtools/spieltag/internal/api/response"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/eligibility"
	"github.com/clubtools/spieltag/internal/services/season"
)

// LockHandler exposes the eligibility engine: the lock index, explicit
// recompute runs and the availability check
type LockHandler struct {
	engine        *eligibility.Engine
	seasonService *season.Service
}

// NewLockHandler creates a new lock handler
func NewLockHandler(engine *eligibility.Engine, seasonService *season.Service) *LockHandler {
	return &LockHandler{
		engine:        engine,
		seasonService: seasonService,
	}
}

// GetIndex handles GET /api/v1/locks
// Returns the lock index from the last recompute run.
func (h *LockHandler) GetIndex(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.LockIndexFromModel(h.engine.LockIndex()))
}

// Recompute handles POST /api/v1/locks/recompute
// Forces a full recompute for the season and returns its summary. Normal
// mutations recompute automatically; this exists for repair after direct
// storage edits or imports.
func (h *LockHandler) Recompute(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.engine.Recompute(r.Context(), seasonID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecomputeResultFromModel(result))
}

// Availability handles GET /api/v1/availability?date=YYYY-MM-DD
// Returns the IDs of players already assigned on the date.
func (h *LockHandler) Availability(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	date, err := model.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		WriteError(w, err)
		return
	}

	unavailable, err := h.engine.UnavailablePlayerIDs(r.Context(), seasonID, date)
	if err != nil {
		WriteError(w, err)
		return
	}

	ids := make([]string, 0, len(unavailable))
	for id := range unavailable {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	response.JSON(w, http.StatusOK, map[string][]string{"unavailable_player_ids": ids})
}
