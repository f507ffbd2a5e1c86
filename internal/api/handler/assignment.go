package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clubtools/spieltag/internal/api/request"
	"github.com/clubtools/spieltag/internal/api/response"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/roster"
)

// AssignmentHandler handles assignment endpoints
type AssignmentHandler struct {
	controller *roster.Controller
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(controller *roster.Controller) *AssignmentHandler {
	return &AssignmentHandler{
		controller: controller,
	}
}

// Create handles POST /api/v1/assignments
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.GameID == "" {
		WriteError(w, NewInvalidRequestError("game_id is required"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	assignment, err := h.controller.CreateAssignment(
		r.Context(),
		model.GameID(req.GameID),
		model.PlayerID(req.PlayerID),
		model.Status(req.Status),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AssignmentFromModel(assignment))
}

// SetStatus handles PATCH /api/v1/assignments/{assignment_id}/status
func (h *AssignmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := model.AssignmentID(mux.Vars(r)["assignment_id"])

	var req request.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	assignment, err := h.controller.SetAssignmentStatus(r.Context(), id, model.Status(req.Status))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssignmentFromModel(assignment))
}

// SetFinalized handles PATCH /api/v1/assignments/{assignment_id}/finalized
func (h *AssignmentHandler) SetFinalized(w http.ResponseWriter, r *http.Request) {
	id := model.AssignmentID(mux.Vars(r)["assignment_id"])

	var req request.SetFinalizedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	assignment, err := h.controller.SetAssignmentFinalized(r.Context(), id, req.Finalized)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssignmentFromModel(assignment))
}

// Delete handles DELETE /api/v1/assignments/{assignment_id}
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.AssignmentID(mux.Vars(r)["assignment_id"])

	if err := h.controller.DeleteAssignment(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
