package models

// User is an account for the admin surface. PasswordHash is bcrypt and never
// serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
