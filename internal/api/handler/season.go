package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clubtools/spieltag/internal/api/request"
	"github.com/clubtools/spieltag/internal/api/response"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/season"
)

// SeasonHandler handles season endpoints
type SeasonHandler struct {
	seasonService *season.Service
}

// NewSeasonHandler creates a new season handler
func NewSeasonHandler(seasonService *season.Service) *SeasonHandler {
	return &SeasonHandler{
		seasonService: seasonService,
	}
}

// currentID returns the current season's ID, or "" when none is selected
func (h *SeasonHandler) currentID(r *http.Request) model.SeasonID {
	current, err := h.seasonService.Current(r.Context())
	if err != nil {
		return ""
	}
	return current.ID
}

// List handles GET /api/v1/seasons
func (h *SeasonHandler) List(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.seasonService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	currentID := h.currentID(r)
	out := make([]response.Season, 0, len(seasons))
	for _, s := range seasons {
		out = append(out, response.SeasonFromModel(s, s.ID == currentID))
	}
	response.JSON(w, http.StatusOK, out)
}

// Create handles POST /api/v1/seasons
func (h *SeasonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSeasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	created, err := h.seasonService.Create(r.Context(), req.Name, req.Year)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SeasonFromModel(created, created.ID == h.currentID(r)))
}

// GetCurrent handles GET /api/v1/seasons/current
func (h *SeasonHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	current, err := h.seasonService.Current(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SeasonFromModel(current, true))
}

// SetCurrent handles PUT /api/v1/seasons/{season_id}/current
func (h *SeasonHandler) SetCurrent(w http.ResponseWriter, r *http.Request) {
	id := model.SeasonID(mux.Vars(r)["season_id"])

	if err := h.seasonService.SetCurrent(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// SetSubstituteCounts handles PATCH /api/v1/seasons/{season_id}/substitute-counts
func (h *SeasonHandler) SetSubstituteCounts(w http.ResponseWriter, r *http.Request) {
	id := model.SeasonID(mux.Vars(r)["season_id"])

	var req request.SetSubstituteCountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.seasonService.SetSubstituteCounts(r.Context(), id, req.SubstituteCounts)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SeasonFromModel(updated, updated.ID == h.currentID(r)))
}

// SetFund handles PATCH /api/v1/seasons/{season_id}/fund
func (h *SeasonHandler) SetFund(w http.ResponseWriter, r *http.Request) {
	id := model.SeasonID(mux.Vars(r)["season_id"])

	var req request.SetFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.seasonService.SetFund(r.Context(), id, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SeasonFromModel(updated, updated.ID == h.currentID(r)))
}

// Delete handles DELETE /api/v1/seasons/{season_id}
func (h *SeasonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.SeasonID(mux.Vars(r)["season_id"])

	if err := h.seasonService.DeleteCascade(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
