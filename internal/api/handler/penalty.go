package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clubtools/spieltag/internal/api/request"
	"github.com/clubtools/spieltag/internal/api/response"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/penalty"
	"github.com/clubtools/spieltag/internal/services/season"
)

// PenaltyHandler handles penalty catalogue endpoints
type PenaltyHandler struct {
	penaltyService *penalty.Service
	seasonService  *season.Service
}

// NewPenaltyHandler creates a new penalty handler
func NewPenaltyHandler(penaltyService *penalty.Service, seasonService *season.Service) *PenaltyHandler {
	return &PenaltyHandler{
		penaltyService: penaltyService,
		seasonService:  seasonService,
	}
}

// List handles GET /api/v1/penalties
func (h *PenaltyHandler) List(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	penalties, err := h.penaltyService.List(r.Context(), seasonID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PenaltiesFromModel(penalties))
}

// Create handles POST /api/v1/penalties
func (h *PenaltyHandler) Create(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.PenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Text == "" {
		WriteError(w, NewInvalidRequestError("text is required"))
		return
	}

	created, err := h.penaltyService.Create(r.Context(), seasonID, req.Text, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PenaltyFromModel(created))
}

// Update handles PUT /api/v1/penalties/{penalty_id}
func (h *PenaltyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PenaltyID(mux.Vars(r)["penalty_id"])

	var req request.PenaltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	updated, err := h.penaltyService.Update(r.Context(), id, req.Text, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PenaltyFromModel(updated))
}

// Delete handles DELETE /api/v1/penalties/{penalty_id}
func (h *PenaltyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PenaltyID(mux.Vars(r)["penalty_id"])

	if err := h.penaltyService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
