package domain

// Admin roles. Editors may read styles and private derivatives; only admins
// may flush derivatives.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

type UserAuth struct {
	ID           string
	Email        string
	PasswordHash string
	Status       string
	Role         string
}
