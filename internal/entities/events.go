package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventOrderCreated          EventType = "order.created"
	EventOrderStatusChanged    EventType = "order.status_changed"
	EventDeliveryAssigned      EventType = "delivery.assigned"
	EventDeliveryStatusChanged EventType = "delivery.status_changed"
	// EventDeliveryUpdated covers edits to notes or the estimate that keep the status.
	EventDeliveryUpdated EventType = "delivery.updated"
)

type OrderEvent struct {
	Type        EventType       `json:"type"`
	OrderID     uuid.UUID       `json:"order_id"`
	UserID      uuid.UUID       `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func NewOrderEvent(t EventType, o Order) OrderEvent {
	return OrderEvent{
		Type:        t,
		OrderID:     o.ID,
		UserID:      o.UserID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		OccurredAt:  o.UpdatedAt,
	}
}

type DeliveryEvent struct {
	Type         EventType      `json:"type"`
	AssignmentID uuid.UUID      `json:"assignment_id"`
	OrderID      uuid.UUID      `json:"order_id"`
	AgentID      *uuid.UUID     `json:"agent_id,omitempty"`
	Status       DeliveryStatus `json:"status"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

func NewDeliveryEvent(t EventType, a DeliveryAssignment) DeliveryEvent {
	return DeliveryEvent{
		Type:         t,
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		AgentID:      a.AgentID,
		Status:       a.Status,
		OccurredAt:   a.UpdatedAt,
	}
}
