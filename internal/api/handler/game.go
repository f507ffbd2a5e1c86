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

// GameHandler handles game endpoints
type GameHandler struct {
	controller    *roster.Controller
	seasonService *season.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *roster.Controller, seasonService *season.Service) *GameHandler {
	return &GameHandler{
		controller:    controller,
		seasonService: seasonService,
	}
}

// gameParams validates a game request body
func gameParams(req request.GameRequest) (roster.GameParams, error) {
	if req.TeamID == "" {
		return roster.GameParams{}, NewInvalidRequestError("team_id is required")
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return roster.GameParams{}, err
	}
	return roster.GameParams{
		TeamID:   model.TeamID(req.TeamID),
		Date:     date,
		Time:     req.Time,
		Location: req.Location,
	}, nil
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	games, err := h.controller.ListGames(r.Context(), seasonID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	params, err := gameParams(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.controller.CreateGame(r.Context(), seasonID, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(game))
}

// Update handles PUT /api/v1/games/{game_id}
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["game_id"])

	var req request.GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	params, err := gameParams(req)
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.controller.UpdateGame(r.Context(), id, params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Delete handles DELETE /api/v1/games/{game_id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["game_id"])

	if err := h.controller.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// ListAssignments handles GET /api/v1/games/{game_id}/assignments
func (h *GameHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["game_id"])

	assignments, err := h.controller.ListAssignmentsForGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AssignmentsFromModel(assignments))
}
