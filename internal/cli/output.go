package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Season:
		o.printSeason(v)
	case []Season:
		for _, s := range v {
			o.printSeason(s)
		}
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Team:
		o.printTeam(v)
	case []Team:
		for _, t := range v {
			o.printTeam(t)
		}
	case Game:
		o.printGame(v)
	case []Game:
		for _, g := range v {
			o.printGame(g)
		}
	case Assignment:
		o.printAssignment(v)
	case []Assignment:
		for _, a := range v {
			o.printAssignment(a)
		}
	case []LockEntry:
		o.printLockEntries(v)
	case RecomputeResult:
		o.printRecomputeResult(v)
	case Penalty:
		o.printPenalty(v)
	case []Penalty:
		for _, p := range v {
			o.printPenalty(p)
		}
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// Season response type
type Season struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Year             int     `json:"year"`
	SubstituteCounts bool    `json:"substitute_counts"`
	Fund             float64 `json:"fund"`
	Current          bool    `json:"current"`
}

// Player response type
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

// Team response type
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Lockable    bool   `json:"lockable"`
	EnforceLock bool   `json:"enforce_lock"`
	LockColor   string `json:"lock_color,omitempty"`
}

// Game response type
type Game struct {
	ID       string `json:"id"`
	TeamID   string `json:"team_id"`
	Date     string `json:"date"`
	Time     string `json:"time,omitempty"`
	Location string `json:"location,omitempty"`
}

// Assignment response type
type Assignment struct {
	ID        string `json:"id"`
	GameID    string `json:"game_id"`
	TeamID    string `json:"team_id"`
	PlayerID  string `json:"player_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Finalized bool   `json:"finalized"`
}

// LockEntry response type
type LockEntry struct {
	PlayerID string `json:"player_id"`
	TeamID   string `json:"team_id"`
	Date     string `json:"date"`
}

// RecomputeResult response type
type RecomputeResult struct {
	Locks              []LockEntry `json:"locks"`
	UpdatedPlayers     int         `json:"updated_players"`
	BlockedAssignments int         `json:"blocked_assignments"`
	WriteFailures      int         `json:"write_failures"`
}

// Penalty response type
type Penalty struct {
	ID     string  `json:"id"`
	Text   string  `json:"text"`
	Amount float64 `json:"amount"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Role: %s\n", u.Role)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printSeason(s Season) {
	currentStr := ""
	if s.Current {
		currentStr = " [current]"
	}
	fmt.Printf("Season: %s (%d)%s - %s\n", s.Name, s.Year, currentStr, s.ID)
	fmt.Printf("  Substitutes count: %t, Fund: %.2f\n", s.SubstituteCounts, s.Fund)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	if p.Rating != "" {
		fmt.Printf("Rating: %s\n", p.Rating)
	}
	if p.Locked {
		fmt.Printf("Locked to team %s since %s\n", p.LockTeamID, p.LockDate)
	}
	if p.ManualBanActive {
		fmt.Printf("Banned from team %s\n", p.ManualBanTeamID)
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		lockStr := ""
		if p.Locked {
			lockStr = fmt.Sprintf(" [locked: %s]", p.LockTeamID)
		}
		if p.ManualBanActive {
			lockStr += fmt.Sprintf(" [banned: %s]", p.ManualBanTeamID)
		}
		fmt.Printf("  - %s (%s) %s%s\n", p.DisplayName, p.ID, p.Rating, lockStr)
	}
}

func (o *Output) printTeam(t Team) {
	flags := ""
	if t.Lockable {
		flags += " [lockable]"
	}
	if t.EnforceLock {
		flags += " [enforcing]"
	}
	fmt.Printf("Team: %s (%s)%s\n", t.Name, t.ID, flags)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s on %s", g.ID, g.Date)
	if g.Time != "" {
		fmt.Printf(" at %s", g.Time)
	}
	if g.Location != "" {
		fmt.Printf(" (%s)", g.Location)
	}
	fmt.Printf(" - team %s\n", g.TeamID)
}

func (o *Output) printAssignment(a Assignment) {
	finalStr := ""
	if a.Finalized {
		finalStr = " [finalized]"
	}
	fmt.Printf("Assignment: player %s -> game %s on %s: %s%s\n",
		a.PlayerID, a.GameID, a.Date, a.Status, finalStr)
}

func (o *Output) printLockEntries(entries []LockEntry) {
	fmt.Printf("Locks (%d):\n", len(entries))
	for _, e := range entries {
		fmt.Printf("  - player %s locked to team %s since %s\n", e.PlayerID, e.TeamID, e.Date)
	}
}

func (o *Output) printRecomputeResult(r RecomputeResult) {
	fmt.Printf("Recompute: %d locks, %d players updated, %d assignments blocked\n",
		len(r.Locks), r.UpdatedPlayers, r.BlockedAssignments)
	if r.WriteFailures > 0 {
		fmt.Printf("Write failures: %d\n", r.WriteFailures)
	}
}

func (o *Output) printPenalty(p Penalty) {
	fmt.Printf("Penalty: %s - %.2f (%s)\n", p.Text, p.Amount, p.ID)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
