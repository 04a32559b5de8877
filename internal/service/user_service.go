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

// UserService exposes administrative account operations. Blocking a user here
// takes effect on that user's very next guarded request, regardless of any
// still-valid token they hold.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// List returns registered users.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

// GetByID fetches a single user.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}
	return user, nil
}

// SetBlocked flips the administrative blocked flag.
func (s *UserService) SetBlocked(ctx context.Context, actorID, id string, blocked bool) error {
	if err := s.users.SetBlocked(ctx, id, blocked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}

	eventType := events.EventUserBlocked
	if !blocked {
		eventType = events.EventUserUnblocked
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      eventType,
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload:   events.UserBlockedPayload{UserID: id, Blocked: blocked},
		})
	}
	return nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}
