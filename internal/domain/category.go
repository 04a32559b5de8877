package domain

import "time"

// Category is a curated theme a collection can belong to.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
