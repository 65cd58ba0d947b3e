package entities_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryAssignment_Apply(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Hour)
	notes := "left at the door"

	testCases := []struct {
		name      string
		from      entities.DeliveryStatus
		update    entities.DeliveryUpdate
		want      entities.DeliveryStatus
		wantErr   error
		wantField string
	}{
		{name: "pick up", from: entities.DeliveryAssigned, update: entities.DeliveryUpdate{Status: entities.DeliveryPickedUp}, want: entities.DeliveryPickedUp},
		{name: "in transit", from: entities.DeliveryPickedUp, update: entities.DeliveryUpdate{Status: entities.DeliveryInTransit}, want: entities.DeliveryInTransit},
		{
			name:   "delivered with time",
			from:   entities.DeliveryInTransit,
			update: entities.DeliveryUpdate{Status: entities.DeliveryDelivered, ActualDeliveryTime: &now, Notes: &notes},
			want:   entities.DeliveryDelivered,
		},
		{
			name:      "delivered without time",
			from:      entities.DeliveryInTransit,
			update:    entities.DeliveryUpdate{Status: entities.DeliveryDelivered},
			wantErr:   entities.ErrInvalidArgument,
			wantField: "actual_delivery_time",
		},
		{
			name:      "actual time without delivered",
			from:      entities.DeliveryAssigned,
			update:    entities.DeliveryUpdate{Status: entities.DeliveryPickedUp, ActualDeliveryTime: &now},
			wantErr:   entities.ErrInvalidArgument,
			wantField: "actual_delivery_time",
		},
		{name: "fail from assigned", from: entities.DeliveryAssigned, update: entities.DeliveryUpdate{Status: entities.DeliveryFailed}, want: entities.DeliveryFailed},
		{name: "fail from in transit", from: entities.DeliveryInTransit, update: entities.DeliveryUpdate{Status: entities.DeliveryFailed}, want: entities.DeliveryFailed},
		{
			name:      "skip to delivered",
			from:      entities.DeliveryAssigned,
			update:    entities.DeliveryUpdate{Status: entities.DeliveryDelivered, ActualDeliveryTime: &now},
			wantErr:   entities.ErrInvalidState,
			wantField: "status",
		},
		{name: "delivered is terminal", from: entities.DeliveryDelivered, update: entities.DeliveryUpdate{Status: entities.DeliveryFailed}, wantErr: entities.ErrInvalidState},
		{name: "failed is terminal", from: entities.DeliveryFailed, update: entities.DeliveryUpdate{Notes: &notes}, wantErr: entities.ErrInvalidState},
		{name: "unknown status", from: entities.DeliveryAssigned, update: entities.DeliveryUpdate{Status: "lost"}, wantErr: entities.ErrInvalidArgument},
		{
			name:   "estimate only",
			from:   entities.DeliveryPickedUp,
			update: entities.DeliveryUpdate{EstimatedDeliveryTime: &later},
			want:   entities.DeliveryPickedUp,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := entities.DeliveryAssignment{ID: uuid.New(), Status: tc.from}

			err := a.Apply(tc.update, now)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantField != "" {
					assert.Equal(t, tc.wantField, entities.FieldOf(err))
				}
				assert.Equal(t, tc.from, a.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, a.Status)
			assert.Equal(t, now, a.UpdatedAt)
			if tc.update.ActualDeliveryTime != nil {
				assert.Equal(t, tc.update.ActualDeliveryTime, a.ActualDeliveryTime)
			}
			if tc.update.EstimatedDeliveryTime != nil {
				assert.Equal(t, tc.update.EstimatedDeliveryTime, a.EstimatedDeliveryTime)
			}
		})
	}
}

func TestDeliveryStatus_OrderStatus(t *testing.T) {
	assert.Equal(t, entities.OrderStatus(""), entities.DeliveryAssigned.OrderStatus())
	assert.Equal(t, entities.OrderOutForDelivery, entities.DeliveryPickedUp.OrderStatus())
	assert.Equal(t, entities.OrderOutForDelivery, entities.DeliveryInTransit.OrderStatus())
	assert.Equal(t, entities.OrderDelivered, entities.DeliveryDelivered.OrderStatus())
	assert.Equal(t, entities.OrderStatus(""), entities.DeliveryFailed.OrderStatus())
}

func TestDeliveryAssignment_VisibleTo(t *testing.T) {
	agent := uuid.New()
	a := entities.DeliveryAssignment{AgentID: &agent}

	assert.True(t, a.VisibleTo(entities.Caller{UserID: agent, Role: entities.RoleDelivery}))
	assert.True(t, a.VisibleTo(entities.Caller{UserID: uuid.New(), Role: entities.RoleOwner}))
	assert.True(t, a.VisibleTo(entities.Caller{UserID: uuid.New(), Role: entities.RoleCustomer, IsStaff: true}))
	assert.False(t, a.VisibleTo(entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}))
	assert.False(t, entities.DeliveryAssignment{}.VisibleTo(entities.Caller{Role: entities.RoleDelivery}))
}
