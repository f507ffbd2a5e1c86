package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidDate        = "INVALID_DATE"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidRole        = "INVALID_ROLE"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeSeasonNotFound     = "SEASON_NOT_FOUND"
	CodeNoCurrentSeason    = "NO_CURRENT_SEASON"
	CodePlayerNotFound     = "PLAYER_NOT_FOUND"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeAssignmentNotFound = "ASSIGNMENT_NOT_FOUND"
	CodePenaltyNotFound    = "PENALTY_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodePlayerUnavailable  = "PLAYER_UNAVAILABLE"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrSeasonNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSeasonNotFound, "Season not found"}}
	case errors.Is(err, model.ErrNoCurrentSeason):
		return &httpError{http.StatusNotFound, APIError{CodeNoCurrentSeason, "No season selected"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrAssignmentNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeAssignmentNotFound, "Assignment not found"}}
	case errors.Is(err, model.ErrPenaltyNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePenaltyNotFound, "Penalty not found"}}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrPlayerUnavailable):
		return &httpError{http.StatusConflict, APIError{CodePlayerUnavailable, "Player already has an assignment on this date"}}
	case errors.Is(err, model.ErrInvalidDate):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDate, "Date must be YYYY-MM-DD"}}
	case errors.Is(err, model.ErrInvalidStatus):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidStatus, "Unknown assignment status"}}
	case errors.Is(err, model.ErrInvalidRole):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRole, "Unknown role"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewForbiddenError creates a forbidden error for insufficient role
func NewForbiddenError() error {
	return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Insufficient permissions"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
