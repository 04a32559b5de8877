package dto

import (
	"time"

	"github.com/spec-kit/collections-service/internal/domain"
)

// ItemRequest payload for create and partial update.
type ItemRequest struct {
	CollectionID string   `json:"collection_id" form:"collection_id"`
	Name         string   `json:"name" form:"name"`
	Tags         []string `json:"tags" form:"tags"`
}

// ItemResponse is the outward item representation.
type ItemResponse struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collection_id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Tags         []string  `json:"tags"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewItemResponse maps a domain item.
func NewItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		CollectionID: item.CollectionID,
		UserID:       item.UserID,
		Name:         item.Name,
		Tags:         item.Tags,
		ImageURL:     item.ImageURL,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

// NewItemResponses maps a slice.
func NewItemResponses(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, NewItemResponse(&items[i]))
	}
	return out
}
