package domain

import "time"

// Category groups a user's todos. Name and colour are each unique per owner:
// a user may not have two categories sharing either.
type Category struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
