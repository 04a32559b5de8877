package domain

import "time"

// Collection groups items owned by a single user.
type Collection struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Theme       string
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
