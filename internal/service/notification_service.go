package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/collections-service/internal/events"
)

// NotificationService logs domain events of operational interest.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventCollectionCreated, n.handleEvent("CollectionCreated"))
	n.dispatcher.Subscribe(events.EventCollectionDeleted, n.handleEvent("CollectionDeleted"))
	n.dispatcher.Subscribe(events.EventItemCreated, n.handleEvent("ItemCreated"))
	n.dispatcher.Subscribe(events.EventUserBlocked, n.handleEvent("UserBlocked"))
	n.dispatcher.Subscribe(events.EventUserUnblocked, n.handleEvent("UserUnblocked"))
}

func (n *NotificationService) handleEvent(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info(name,
			zap.String("event_id", event.ID),
			zap.String("actor_id", event.ActorID),
			zap.Any("payload", event.Payload),
		)
		return nil
	}
}
