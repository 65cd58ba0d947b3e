//go:build integration

package messaging_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/messaging"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

func TestProducer_Kafka(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tckafka.Run(ctx,
		"confluentinc/confluent-local:7.8.0",
		tckafka.WithClusterID("test-cluster"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate kafka container: %v", err)
		}
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)

	cfg := config.Kafka{
		Brokers:      brokers,
		EventsTopic:  "delivery-events",
		BatchTimeout: 10 * time.Millisecond,
	}
	p := messaging.NewProducer(cfg)

	event := entities.DeliveryEvent{
		Type:         entities.EventDeliveryAssigned,
		AssignmentID: uuid.New(),
		OrderID:      uuid.New(),
		Status:       entities.DeliveryAssigned,
		OccurredAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	require.Eventually(t, func() bool {
		return p.Publish(ctx, event.OrderID.String(), event) == nil
	}, time.Minute, time.Second)
	require.NoError(t, p.Close())

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   cfg.EventsTopic,
		GroupID: "integration-test",
	})
	defer reader.Close()

	msg, err := reader.ReadMessage(ctx)
	require.NoError(t, err)

	var got entities.DeliveryEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, event.OrderID.String(), string(msg.Key))
	assert.Equal(t, event.AssignmentID, got.AssignmentID)
	assert.Equal(t, entities.EventDeliveryAssigned, got.Type)
}
