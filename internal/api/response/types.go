package response

import (
	"slices"
	"strings"

	"github.com/clubtools/spieltag/internal/model"
	"github.com/clubtools/spieltag/internal/services/auth"
	"github.com/clubtools/spieltag/internal/services/eligibility"
)

// User represents a user account in API responses
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:       string(u.ID),
		Username: u.Username,
		Role:     string(u.Role),
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(&s.User),
		SessionToken: s.Token,
	}
}

// Season represents a season in API responses
type Season struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Year             int     `json:"year"`
	SubstituteCounts bool    `json:"substitute_counts"`
	Fund             float64 `json:"fund"`
	Current          bool    `json:"current"`
}

// SeasonFromModel converts a model.Season; current is the season pointer
func SeasonFromModel(s *model.Season, current bool) Season {
	return Season{
		ID:               string(s.ID),
		Name:             s.Name,
		Year:             s.Year,
		SubstituteCounts: s.SubstituteCounts,
		Fund:             s.Fund,
		Current:          current,
	}
}

// Player represents a player in API responses. The lock block is derived
// state; manual_ban is the administrator override.
type Player struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
	Rating      string `json:"rating,omitempty"`
	Rank        int    `json:"rank,omitempty"`
	Color       string `json:"color,omitempty"`

	Locked     bool   `json:"locked"`
	LockTeamID string `json:"lock_team_id,omitempty"`
	LockDate   string `json:"lock_date,omitempty"`

	ManualBanTeamID string `json:"manual_ban_team_id,omitempty"`
	ManualBanActive bool   `json:"manual_ban_active,omitempty"`
}

// PlayerFromModel converts a model.Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:              string(p.ID),
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		DisplayName:     p.DisplayName(),
		Rating:          p.Rating,
		Rank:            p.Rank,
		Color:           p.Color,
		Locked:          p.Locked,
		LockTeamID:      string(p.LockTeamID),
		LockDate:        p.LockDate.String(),
		ManualBanTeamID: string(p.ManualBanTeamID),
		ManualBanActive: p.ManualBanActive,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []*model.Player) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerFromModel(p))
	}
	return out
}

// Team represents a team in API responses
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Lockable    bool   `json:"lockable"`
	EnforceLock bool   `json:"enforce_lock"`
	LockColor   string `json:"lock_color,omitempty"`
}

// TeamFromModel converts a model.Team
func TeamFromModel(t *model.Team) Team {
	return Team{
		ID:          string(t.ID),
		Name:        t.Name,
		Lockable:    t.Lockable,
		EnforceLock: t.EnforceLock,
		LockColor:   t.LockColor,
	}
}

// TeamsFromModel converts a slice of teams
func TeamsFromModel(teams []*model.Team) []Team {
	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamFromModel(t))
	}
	return out
}

// Game represents a fixture in API responses
type Game struct {
	ID       string `json:"id"`
	TeamID   string `json:"team_id"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:       string(g.ID),
		TeamID:   string(g.TeamID),
		Date:     g.Date.String(),
		Time:     g.Time,
		Location: g.Location,
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []*model.Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		out = append(out, GameFromModel(g))
	}
	return out
}

// Assignment represents a line-up entry in API responses
type Assignment struct {
	ID        string `json:"id"`
	GameID    string `json:"game_id"`
	TeamID    string `json:"team_id"`
	PlayerID  string `json:"player_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Finalized bool   `json:"finalized"`
}

// AssignmentFromModel converts a model.Assignment
func AssignmentFromModel(a *model.Assignment) Assignment {
	return Assignment{
		ID:        string(a.ID),
		GameID:    string(a.GameID),
		TeamID:    string(a.TeamID),
		PlayerID:  string(a.PlayerID),
		Date:      a.Date.String(),
		Status:    string(a.Status),
		Finalized: a.Finalized,
	}
}

// AssignmentsFromModel converts a slice of assignments
func AssignmentsFromModel(assignments []*model.Assignment) []Assignment {
	out := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, AssignmentFromModel(a))
	}
	return out
}

// LockEntry is one player's lock anchor in the lock index
type LockEntry struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Date     string `json:"date"`
}

// LockIndexFromModel converts the engine's lock index to a list ordered
// by player ID
func LockIndexFromModel(index eligibility.LockIndex) []LockEntry {
	out := make([]LockEntry, 0, len(index))
	for playerID, anchor := range index {
		out = append(out, LockEntry{
			PlayerID: string(playerID),
			TeamID:   string(anchor.TeamID),
			Date:     anchor.Date.String(),
		})
	}
	slices.SortFunc(out, func(a, b LockEntry) int {
		return strings.Compare(a.PlayerID, b.PlayerID)
	})
	return out
}

// RecomputeResult summarizes one engine run
type RecomputeResult struct {
	Locks              []LockEntry `json:"locks"`
	UpdatedPlayers     int         `json:"updated_players"`
	BlockedAssignments int         `json:"blocked_assignments"`
	WriteFailures      int         `json:"write_failures"`
}

// RecomputeResultFromModel converts an eligibility.Result
func RecomputeResultFromModel(r *eligibility.Result) RecomputeResult {
	return RecomputeResult{
		Locks:              LockIndexFromModel(r.Anchors),
		UpdatedPlayers:     len(r.UpdatedPlayers),
		BlockedAssignments: len(r.BlockedAssignments),
		WriteFailures:      r.WriteFailures,
	}
}

// Penalty represents a penalty catalogue entry in API responses
type Penalty struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
}

// PenaltyFromModel converts a model.Penalty
func PenaltyFromModel(p *model.Penalty) Penalty {
	return Penalty{
		ID:     string(p.ID),
		Text:   p.Text,
		Amount: p.Amount,
	}
}

// PenaltiesFromModel converts a slice of penalties
func PenaltiesFromModel(penalties []*model.Penalty) []Penalty {
	out := make([]Penalty, 0, len(penalties))
	for _, p := range penalties {
		out = append(out, PenaltyFromModel(p))
	}
	return out
}
