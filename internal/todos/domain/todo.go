package domain

import "time"

type Todo struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	CategoryID  string     `json:"category_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Urgent      bool       `json:"urgent"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"time_completed"`
	CreatedAt   time.Time  `json:"time_created"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TodoPatch is the owner merge-patch for a todo. Nil fields are left
// untouched; set fields are validated before the merge. Flipping Completed
// maintains the completion timestamp.
type TodoPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Urgent      *bool   `json:"urgent"`
	Completed   *bool   `json:"completed"`
}
