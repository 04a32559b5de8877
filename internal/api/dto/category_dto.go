package dto

import (
	"time"

	"github.com/spec-kit/collections-service/internal/domain"
)

// CategoryRequest payload for create.
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse is the outward category representation.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategoryResponse maps a domain category.
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}
}

// NewCategoryResponses maps a slice.
func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryResponse(&categories[i]))
	}
	return out
}
