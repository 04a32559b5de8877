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

// CollectionCache caches the public collections listing.
type CollectionCache interface {
	GetList(ctx context.Context) ([]domain.Collection, bool)
	SetList(ctx context.Context, collections []domain.Collection)
	Invalidate(ctx context.Context)
}

// CollectionService coordinates collection workflows.
type CollectionService struct {
	collections repository.CollectionRepository
	categories  repository.CategoryRepository
	cache       CollectionCache
	dispatcher  events.Dispatcher
}

// CollectionInput describes create/update payloads.
type CollectionInput struct {
	Title       string
	Description string
	Theme       string
	ImageURL    *string
}

// NewCollectionService constructs the service. Cache may be nil.
func NewCollectionService(collections repository.CollectionRepository, categories repository.CategoryRepository, cache CollectionCache, dispatcher events.Dispatcher) *CollectionService {
	return &CollectionService{
		collections: collections,
		categories:  categories,
		cache:       cache,
		dispatcher:  dispatcher,
	}
}

// Create persists a collection owned by userID.
func (s *CollectionService) Create(ctx context.Context, userID string, input CollectionInput) (*domain.Collection, error) {
	if err := s.checkTheme(ctx, input.Theme); err != nil {
		return nil, err
	}

	collection := &domain.Collection{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Theme:       input.Theme,
		ImageURL:    input.ImageURL,
	}
	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCollectionCreated,
		ActorID:   userID,
		Timestamp: time.Now(),
		Payload: events.CollectionCreatedPayload{
			CollectionID: collection.ID,
			Title:        collection.Title,
			Theme:        collection.Theme,
		},
	})
	return collection, nil
}

// Update applies a partial update; empty fields keep their current values.
// Only the owner may update.
func (s *CollectionService) Update(ctx context.Context, userID, id string, input CollectionInput) (*domain.Collection, error) {
	collection, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		collection.Title = input.Title
	}
	if input.Description != "" {
		collection.Description = input.Description
	}
	if input.Theme != "" {
		if err := s.checkTheme(ctx, input.Theme); err != nil {
			return nil, err
		}
		collection.Theme = input.Theme
	}
	if input.ImageURL != nil {
		collection.ImageURL = input.ImageURL
	}

	if err := s.collections.Update(ctx, collection); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return collection, nil
}

// AttachImage records the uploaded asset URL on an existing collection. Used
// by the create-then-attach upload sequence.
func (s *CollectionService) AttachImage(ctx context.Context, id, imageURL string) (*domain.Collection, error) {
	collection, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	collection.ImageURL = &imageURL
	if err := s.collections.Update(ctx, collection); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return collection, nil
}

// Delete removes an owned collection.
func (s *CollectionService) Delete(ctx context.Context, userID, id string) (*domain.Collection, error) {
	collection, err := s.getOwned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.collections.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventCollectionDeleted,
		ActorID:   userID,
		Timestamp: time.Now(),
		Payload:   events.CollectionCreatedPayload{CollectionID: id, Title: collection.Title, Theme: collection.Theme},
	})
	return collection, nil
}

// GetByID fetches a single collection.
func (s *CollectionService) GetByID(ctx context.Context, id string) (*domain.Collection, error) {
	collection, err := s.collections.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("collection", map[string]any{"id": id})
		}
		return nil, err
	}
	return collection, nil
}

// ListAll returns the public listing, served from cache when warm.
func (s *CollectionService) ListAll(ctx context.Context, limit, offset int) ([]domain.Collection, error) {
	if s.cache != nil && offset == 0 {
		if cached, ok := s.cache.GetList(ctx); ok {
			return cached, nil
		}
	}

	collections, err := s.collections.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && offset == 0 {
		s.cache.SetList(ctx, collections)
	}
	return collections, nil
}

// ListByUser returns the owner's collections.
func (s *CollectionService) ListByUser(ctx context.Context, userID string) ([]domain.Collection, error) {
	return s.collections.ListByUser(ctx, userID)
}

func (s *CollectionService) getOwned(ctx context.Context, userID, id string) (*domain.Collection, error) {
	collection, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if collection.UserID != userID {
		return nil, apperrors.NewForbidden("not the collection owner")
	}
	return collection, nil
}

func (s *CollectionService) checkTheme(ctx context.Context, theme string) error {
	if theme == "" {
		return nil
	}
	if _, err := s.categories.GetByName(ctx, theme); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("unknown theme", map[string]any{"theme": theme})
		}
		return err
	}
	return nil
}

func (s *CollectionService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func (s *CollectionService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, event)
	}
}
