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

// PlayerHandler handles player endpoints
type PlayerHandler struct {
	controller    *roster.Controller
	seasonService *season.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *roster.Controller, seasonService *season.Service) *PlayerHandler {
	return &PlayerHandler{
		controller:    controller,
		seasonService: seasonService,
	}
}

// List handles GET /api/v1/players
// Players are returned sorted by rating; ?order=desc reverses the order.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	descending := r.URL.Query().Get("order") == "desc"
	players, err := h.controller.ListPlayersSorted(r.Context(), seasonID, descending)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	seasonID, err := resolveSeason(r, h.seasonService)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.FirstName == "" && req.LastName == "" {
		WriteError(w, NewInvalidRequestError("a name is required"))
		return
	}

	player, err := h.controller.CreatePlayer(r.Context(), seasonID, roster.PlayerParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Rating:    req.Rating,
		Rank:      req.Rank,
		Color:     req.Color,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Update handles PUT /api/v1/players/{player_id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.PlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.controller.UpdatePlayer(r.Context(), id, roster.PlayerParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Rating:    req.Rating,
		Rank:      req.Rank,
		Color:     req.Color,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// SetManualBan handles PUT /api/v1/players/{player_id}/manual-ban
func (h *PlayerHandler) SetManualBan(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.SetManualBanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Active && req.TeamID == "" {
		WriteError(w, NewInvalidRequestError("team_id is required to activate a ban"))
		return
	}

	player, err := h.controller.SetManualBan(r.Context(), id, model.TeamID(req.TeamID), req.Active)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{player_id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["player_id"])

	if err := h.controller.DeletePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}
