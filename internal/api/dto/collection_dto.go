package dto

import (
	"time"

	"github.com/spec-kit/collections-service/internal/domain"
)

// CollectionRequest payload for create and partial update. Sent either as
// JSON or as multipart form fields alongside an optional file.
type CollectionRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Theme       string `json:"theme" form:"theme"`
}

// CollectionResponse is the outward collection representation.
type CollectionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Theme       string    `json:"theme"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCollectionResponse maps a domain collection.
func NewCollectionResponse(collection *domain.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          collection.ID,
		UserID:      collection.UserID,
		Title:       collection.Title,
		Description: collection.Description,
		Theme:       collection.Theme,
		ImageURL:    collection.ImageURL,
		CreatedAt:   collection.CreatedAt,
		UpdatedAt:   collection.UpdatedAt,
	}
}

// NewCollectionResponses maps a slice.
func NewCollectionResponses(collections []domain.Collection) []CollectionResponse {
	out := make([]CollectionResponse, 0, len(collections))
	for i := range collections {
		out = append(out, NewCollectionResponse(&collections[i]))
	}
	return out
}
