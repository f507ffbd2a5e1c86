package model

import "time"

// UserID uniquely identifies a user account
type UserID string

// Role is a user's permission level
type Role string

const (
	// RoleViewer may read everything
	RoleViewer Role = "viewer"
	// RoleCoach may additionally manage line-ups and enforce flags
	RoleCoach Role = "coach"
	// RoleAdmin may additionally delete entities, manage seasons, users
	// and manual bans
	RoleAdmin Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleCoach:  2,
	RoleAdmin:  3,
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r grants at least the permissions of min
func (r Role) AtLeast(min Role) bool {
	return roleRank[r] >= roleRank[min]
}

// User is an account for the club's management surface
type User struct {
	ID           UserID
	Username     string // login username (immutable)
	PasswordHash string // bcrypt hash
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
