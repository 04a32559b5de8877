package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/collections-service/internal/domain"
	"github.com/spec-kit/collections-service/internal/events"
	"github.com/spec-kit/collections-service/internal/repository"
	apperrors "github.com/spec-kit/collections-service/pkg/util/errorutil"
)

// ItemService coordinates item workflows.
type ItemService struct {
	items       repository.ItemRepository
	collections repository.CollectionRepository
	dispatcher  events.Dispatcher
}

// ItemInput describes create/update payloads.
type ItemInput struct {
	CollectionID string
	Name         string
	Tags         []string
	ImageURL     *string
}

// NewItemService constructs the service.
func NewItemService(items repository.ItemRepository, collections repository.CollectionRepository, dispatcher events.Dispatcher) *ItemService {
	return &ItemService{items: items, collections: collections, dispatcher: dispatcher}
}

// Create persists an item inside a collection the user owns.
func (s *ItemService) Create(ctx context.Context, userID string, input ItemInput) (*domain.Item, error) {
	collection, err := s.collections.GetByID(ctx, input.CollectionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("collection", map[string]any{"id": input.CollectionID})
		}
		return nil, err
	}
	if collection.UserID != userID {
		return nil, apperrors.NewForbidden("not the collection owner")
	}

	item := &domain.Item{
		CollectionID: input.CollectionID,
		UserID:       userID,
		Name:         input.Name,
		Tags:         input.Tags,
		ImageURL:     input.ImageURL,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventItemCreated,
			ActorID:   userID,
			Timestamp: time.Now(),
			Payload: events.ItemCreatedPayload{
				ItemID:       item.ID,
				CollectionID: item.CollectionID,
				Name:         item.Name,
			},
		})
	}
	return item, nil
}

// Update applies a partial update to an owned item.
func (s *ItemService) Update(ctx context.Context, userID, id string, input ItemInput) (*domain.Item, error) {
	item, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.Tags != nil {
		item.Tags = input.Tags
	}
	if input.ImageURL != nil {
		item.ImageURL = input.ImageURL
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// AttachImage records the uploaded asset URL on an existing item.
func (s *ItemService) AttachImage(ctx context.Context, id, imageURL string) (*domain.Item, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.ImageURL = &imageURL
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an owned item.
func (s *ItemService) Delete(ctx context.Context, userID, id string) (*domain.Item, error) {
	item, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID fetches a single item.
func (s *ItemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("item", map[string]any{"id": id})
		}
		return nil, err
	}
	return item, nil
}

// ListAll returns the public item listing.
func (s *ItemService) ListAll(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	return s.items.ListAll(ctx, limit, offset)
}

// ListByCollection returns items in a collection.
func (s *ItemService) ListByCollection(ctx context.Context, collectionID string) ([]domain.Item, error) {
	return s.items.ListByCollection(ctx, collectionID)
}

// ListByUser returns the owner's items.
func (s *ItemService) ListByUser(ctx context.Context, userID string) ([]domain.Item, error) {
	return s.items.ListByUser(ctx, userID)
}

func (s *ItemService) getOwned(ctx context.Context, userID, id string) (*domain.Item, error) {
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, apperrors.NewForbidden("not the item owner")
	}
	return item, nil
}
