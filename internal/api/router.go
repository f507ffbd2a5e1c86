package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/clubtools/spieltag/internal/api/handler"
	"github.com/clubtools/spieltag/internal/api/middleware"
	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/auth"
	"github.com/clubtools/spieltag/internal/services/eligibility"
	"github.com/clubtools/spieltag/internal/services/penalty"
	"github.com/clubtools/spieltag/internal/services/roster"
	"github.com/clubtools/spieltag/internal/services/season"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	SeasonService    *season.Service
	RosterController *roster.Controller
	PenaltyService   *penalty.Service
	Engine           *eligibility.Engine
}

// NewRouter creates a new API router with all routes configured.
//
// Role model: viewers read everything, coaches manage line-ups and the
// enforce flags, admins manage seasons, users, manual bans and deletes.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	seasonHandler := handler.NewSeasonHandler(cfg.SeasonService)
	playerHandler := handler.NewPlayerHandler(cfg.RosterController, cfg.SeasonService)
	teamHandler := handler.NewTeamHandler(cfg.RosterController, cfg.SeasonService)
	gameHandler := handler.NewGameHandler(cfg.RosterController, cfg.SeasonService)
	assignmentHandler := handler.NewAssignmentHandler(cfg.RosterController)
	penaltyHandler := handler.NewPenaltyHandler(cfg.PenaltyService, cfg.SeasonService)
	lockHandler := handler.NewLockHandler(cfg.Engine, cfg.SeasonService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	coach := middleware.RequireRole(model.RoleCoach)
	admin := middleware.RequireRole(model.RoleAdmin)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Public routes
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Everything else requires a session
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)

	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", authHandler.GetMe).Methods(http.MethodGet)

	// Reads (any role)
	protected.HandleFunc("/seasons", seasonHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/seasons/current", seasonHandler.GetCurrent).Methods(http.MethodGet)
	protected.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/teams", teamHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/games/{game_id}/assignments", gameHandler.ListAssignments).Methods(http.MethodGet)
	protected.HandleFunc("/penalties", penaltyHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/locks", lockHandler.GetIndex).Methods(http.MethodGet)
	protected.HandleFunc("/availability", lockHandler.Availability).Methods(http.MethodGet)

	// Coach routes: line-up management and enforce flags
	coachRoutes := protected.NewRoute().Subrouter()
	coachRoutes.Use(coach)
	coachRoutes.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/players/{player_id}", playerHandler.Update).Methods(http.MethodPut)
	coachRoutes.HandleFunc("/teams", teamHandler.Create).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/teams/{team_id}", teamHandler.Update).Methods(http.MethodPut)
	coachRoutes.HandleFunc("/teams/{team_id}/enforce", teamHandler.SetEnforce).Methods(http.MethodPatch)
	coachRoutes.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/games/{game_id}", gameHandler.Update).Methods(http.MethodPut)
	coachRoutes.HandleFunc("/assignments", assignmentHandler.Create).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/assignments/{assignment_id}/status", assignmentHandler.SetStatus).Methods(http.MethodPatch)
	coachRoutes.HandleFunc("/assignments/{assignment_id}/finalized", assignmentHandler.SetFinalized).Methods(http.MethodPatch)
	coachRoutes.HandleFunc("/assignments/{assignment_id}", assignmentHandler.Delete).Methods(http.MethodDelete)
	coachRoutes.HandleFunc("/penalties", penaltyHandler.Create).Methods(http.MethodPost)
	coachRoutes.HandleFunc("/penalties/{penalty_id}", penaltyHandler.Update).Methods(http.MethodPut)
	coachRoutes.HandleFunc("/locks/recompute", lockHandler.Recompute).Methods(http.MethodPost)

	// Admin routes: seasons, users, manual bans, deletes
	adminRoutes := protected.NewRoute().Subrouter()
	adminRoutes.Use(admin)
	adminRoutes.HandleFunc("/seasons", seasonHandler.Create).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/seasons/{season_id}/current", seasonHandler.SetCurrent).Methods(http.MethodPut)
	adminRoutes.HandleFunc("/seasons/{season_id}/substitute-counts", seasonHandler.SetSubstituteCounts).Methods(http.MethodPatch)
	adminRoutes.HandleFunc("/seasons/{season_id}/fund", seasonHandler.SetFund).Methods(http.MethodPatch)
	adminRoutes.HandleFunc("/seasons/{season_id}", seasonHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/players/{player_id}/manual-ban", playerHandler.SetManualBan).Methods(http.MethodPut)
	adminRoutes.HandleFunc("/players/{player_id}", playerHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/teams/{team_id}", teamHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/games/{game_id}", gameHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/penalties/{penalty_id}", penaltyHandler.Delete).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/users", authHandler.CreateUser).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
