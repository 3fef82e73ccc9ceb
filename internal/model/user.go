package model

// Role distinguishes the two kinds of accounts the application knows about.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleAdmin    Role = "Admin"
)

// StatusConnected is the only status a locally established session can have.
const StatusConnected = "connected"

// User is the session record persisted under the "user" key once a login form
// is submitted. It is never mutated; a new submission overwrites the old one.
type User struct {
	Type     Role   `json:"type"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Status   string `json:"status"`
}
