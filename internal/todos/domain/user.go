package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt encoded, never the plaintext
	Roles        RoleSet
	Active       bool
	Penalties    int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the redacted view returned by the API. It never carries the
// password hash.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	Penalties int       `json:"penalties"`
	CreatedAt time.Time `json:"created_at"`
}

// Redact strips credentials from a user record.
func (u User) Redact() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     u.Roles.Strings(),
		Active:    u.Active,
		Penalties: u.Penalties,
		CreatedAt: u.CreatedAt,
	}
}

// UserPatch is the admin merge-patch for a user record. Nil fields are left
// untouched. Every set field is validated before the merge.
type UserPatch struct {
	Username  *string  `json:"username"`
	Email     *string  `json:"email"`
	Password  *string  `json:"password"`
	Roles     []string `json:"roles"`
	Active    *bool    `json:"active"`
	Penalties *int     `json:"penalties"`
}
