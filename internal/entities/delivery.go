package entities

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryInTransit DeliveryStatus = "in_transit"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryFailed    DeliveryStatus = "failed"
)

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryAssigned:  {DeliveryPickedUp, DeliveryFailed},
	DeliveryPickedUp:  {DeliveryInTransit, DeliveryFailed},
	DeliveryInTransit: {DeliveryDelivered, DeliveryFailed},
}

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryInTransit, DeliveryDelivered, DeliveryFailed:
		return true
	}
	return false
}

func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	return slices.Contains(deliveryTransitions[s], next)
}

// OrderStatus is the status the parent order has to reach once the delivery is
// in this status. Empty means the order is left alone.
func (s DeliveryStatus) OrderStatus() OrderStatus {
	switch s {
	case DeliveryPickedUp, DeliveryInTransit:
		return OrderOutForDelivery
	case DeliveryDelivered:
		return OrderDelivered
	}
	return ""
}

type DeliveryAssignment struct {
	ID                    uuid.UUID
	OrderID               uuid.UUID
	AgentID               *uuid.UUID
	Status                DeliveryStatus
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

type AssignDelivery struct {
	OrderID               uuid.UUID
	AgentID               *uuid.UUID
	EstimatedDeliveryTime *time.Time
	Notes                 string
}

func NewDeliveryAssignment(req AssignDelivery, at time.Time) DeliveryAssignment {
	return DeliveryAssignment{
		ID:                    uuid.New(),
		OrderID:               req.OrderID,
		AgentID:               req.AgentID,
		Status:                DeliveryAssigned,
		EstimatedDeliveryTime: req.EstimatedDeliveryTime,
		Notes:                 req.Notes,
		CreatedAt:             at,
		UpdatedAt:             at,
	}
}

// VisibleTo reports whether the caller may read the assignment.
func (a DeliveryAssignment) VisibleTo(c Caller) bool {
	return c.Elevated() || (a.AgentID != nil && c.Owns(*a.AgentID))
}

// DeliveryUpdate is a partial update of an assignment. An empty Status keeps
// the current one.
type DeliveryUpdate struct {
	Status                DeliveryStatus
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Notes                 *string
}

func (a *DeliveryAssignment) Apply(u DeliveryUpdate, at time.Time) error {
	if a.Status.Terminal() {
		return NewInvalidStateError("status", fmt.Sprintf("assignment is already %s", a.Status))
	}

	if u.Status != "" {
		if !u.Status.Valid() {
			return NewInvalidArgumentError("status", fmt.Sprintf("unknown value %q", u.Status))
		}
		if !a.Status.CanTransitionTo(u.Status) {
			return NewInvalidStateError("status", fmt.Sprintf("cannot move assignment from %s to %s", a.Status, u.Status))
		}
	}

	if u.Status == DeliveryDelivered && u.ActualDeliveryTime == nil {
		return NewInvalidArgumentError("actual_delivery_time", "is required when marking delivered")
	}
	if u.Status != DeliveryDelivered && u.ActualDeliveryTime != nil {
		return NewInvalidArgumentError("actual_delivery_time", "can only be set when marking delivered")
	}

	if u.Status != "" {
		a.Status = u.Status
	}
	if u.EstimatedDeliveryTime != nil {
		a.EstimatedDeliveryTime = u.EstimatedDeliveryTime
	}
	if u.ActualDeliveryTime != nil {
		a.ActualDeliveryTime = u.ActualDeliveryTime
	}
	if u.Notes != nil {
		a.Notes = *u.Notes
	}
	a.UpdatedAt = at
	return nil
}

// Fail moves a non-terminal assignment to failed, recording why.
func (a *DeliveryAssignment) Fail(reason string, at time.Time) error {
	return a.Apply(DeliveryUpdate{Status: DeliveryFailed, Notes: &reason}, at)
}

type AssignmentFilter struct {
	AgentID *uuid.UUID
	OrderID *uuid.UUID
	Status  *DeliveryStatus
	Limit   uint64
	Offset  uint64
}
