package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clubtools/spieltag/internal/api/request"
	"github.com/clubtools/spieltag/internal/api/response"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/roster"
	"github.com/clubtools/spieltag/internal/services/season"
)

// TeamHandler handles team endpoints
type TeamHandler struct {
	controller    *roster.Controller
	seasonService *season.Service
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(controller *roster.Controller, seasonService *season.Service) *TeamHandler {
	return &TeamHandler{
		controller:    controller,
		seasonService: seasonService,
	}
}

// List handles GET /api/v1/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	teams, err := h.controller.ListTeams(r.Context(), seasonID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamsFromModel(teams))
}

// Create handles POST /api/v1/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	team, err := h.controller.CreateTeam(r.Context(), seasonID, roster.TeamParams{
		Name:        req.Name,
		Lockable:    req.Lockable,
		EnforceLock: req.EnforceLock,
		LockColor:   req.LockColor,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TeamFromModel(team))
}

// Update handles PUT /api/v1/teams/{team_id}
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["team_id"])

	var req request.TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	team, err := h.controller.UpdateTeam(r.Context(), id, roster.TeamParams{
		Name:        req.Name,
		Lockable:    req.Lockable,
		EnforceLock: req.EnforceLock,
		LockColor:   req.LockColor,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team))
}

// SetEnforce handles PATCH /api/v1/teams/{team_id}/enforce
func (h *TeamHandler) SetEnforce(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["team_id"])

	var req request.SetEnforceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	team, err := h.controller.SetTeamEnforce(r.Context(), id, req.EnforceLock)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team))
}

// Delete handles DELETE /api/v1/teams/{team_id}
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.TeamID(mux.Vars(r)["team_id"])

	if err := h.controller.DeleteTeam(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
