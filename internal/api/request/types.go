package request

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest is the request body for creating a user account
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateSeasonRequest is the request body for creating a season
type CreateSeasonRequest struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// SetSubstituteCountsRequest toggles substitute counting for a season
type SetSubstituteCountsRequest struct {
	SubstituteCounts bool `json:"substitute_counts"`
}

// SetFundRequest updates the season's team fund balance
type SetFundRequest struct {
	Amount float64 `json:"amount"`
}

// PlayerRequest is the request body for creating or updating a player
type PlayerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Rating    string `json:"rating,omitempty"`
	Rank      int    `json:"rank,omitempty"`
	Color     string `json:"color,omitempty"`
}

// SetManualBanRequest sets or clears a player's manual team ban
type SetManualBanRequest struct {
	TeamID string `json:"team_id"`
	Active bool   `json:"active"`
}

// TeamRequest is the request body for creating or updating a team
type TeamRequest struct {
	Name        string `json:"name"`
	Lockable    bool   `json:"lockable"`
	EnforceLock bool   `json:"enforce_lock"`
	LockColor   string `json:"lock_color,omitempty"`
}

// SetEnforceRequest toggles a team's enforce flag
type SetEnforceRequest struct {
	EnforceLock bool `json:"enforce_lock"`
}

// GameRequest is the request body for creating or updating a game
type GameRequest struct {
	TeamID   string `json:"team_id"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
}

// CreateAssignmentRequest is the request body for booking a player
type CreateAssignmentRequest struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status,omitempty"`
}

// SetStatusRequest changes an assignment's status
type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetFinalizedRequest marks an assignment as confirmed
type SetFinalizedRequest struct {
	Finalized bool `json:"finalized"`
}

// PenaltyRequest is the request body for creating or updating a penalty
// catalogue entry
type PenaltyRequest struct {
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
}
