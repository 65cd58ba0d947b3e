package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/google/uuid"
)

type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (entities.User, error)
}

type ProductGetter interface {
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
}

// EventPublisher delivers domain events after the transaction that produced
// them has committed.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

func now() time.Time {
	return time.Now().UTC()
}

// publish never fails the operation: the state change is already committed.
func publish(ctx context.Context, logger *slog.Logger, events EventPublisher, key string, event any) {
	if err := events.Publish(ctx, key, event); err != nil {
		logger.Error("failed to publish event", slog.String("key", key), slog.Any("error", err))
	}
}
