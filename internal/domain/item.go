package domain

import "time"

// Item is a single entry inside a collection.
type Item struct {
	ID           string
	CollectionID string
	UserID       string
	Name         string
	Tags         []string
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
