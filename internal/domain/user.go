package domain

// Role is the coarse user role established at registration.
// Immutable from the client's perspective.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents the logged-in profile fetched from the backend
type User struct {
	ID    int64
	Name  string
	Email string
	Phone string
	Role  Role
}
