package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/service"
	mocks "github.com/SergeyBogomolovv/delivery-commerce-service/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deliveryDeps struct {
	orders      *mocks.MockOrderRepo
	assignments *mocks.MockAssignmentRepo
	users       *mocks.MockUserGetter
	events      *mocks.MockEventPublisher
}

func newDeliveryDeps(t *testing.T) deliveryDeps {
	return deliveryDeps{
		orders:      mocks.NewMockOrderRepo(t),
		assignments: mocks.NewMockAssignmentRepo(t),
		users:       mocks.NewMockUserGetter(t),
		events:      mocks.NewMockEventPublisher(t),
	}
}

type deliveryService interface {
	AssignDelivery(ctx context.Context, caller entities.Caller, req entities.AssignDelivery) (entities.DeliveryAssignment, error)
	UpdateDelivery(ctx context.Context, caller entities.Caller, id uuid.UUID, u entities.DeliveryUpdate) (entities.DeliveryAssignment, error)
	GetDelivery(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.DeliveryAssignment, error)
	ListDeliveries(ctx context.Context, caller entities.Caller, f entities.AssignmentFilter) ([]entities.DeliveryAssignment, error)
	CountOverdue(ctx context.Context) (int, error)
}

func (d deliveryDeps) service(t *testing.T) deliveryService {
	return service.NewDeliveryService(newLogger(), passThroughTx(t), d.orders, d.assignments, d.users, d.events)
}

func TestDeliveryService_AssignDelivery(t *testing.T) {
	type MockBehavior func(d deliveryDeps, order entities.Order)

	staff := entities.Caller{UserID: uuid.New(), Role: entities.RoleAdmin}
	agent := entities.User{ID: uuid.New(), Role: entities.RoleDelivery}
	customer := entities.User{ID: uuid.New(), Role: entities.RoleCustomer}
	eta := time.Now().Add(time.Hour)
	notFound := func(id uuid.UUID) error { return entities.NewNotFoundError("order_id", id) }

	testCases := []struct {
		name         string
		caller       entities.Caller
		status       entities.OrderStatus
		agentID      *uuid.UUID
		mockBehavior MockBehavior
		wantErr      error
		wantField    string
	}{
		{
			name:    "OK",
			caller:  staff,
			status:  entities.OrderProcessing,
			agentID: &agent.ID,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentByOrder(mock.Anything, o.ID).Return(entities.DeliveryAssignment{}, notFound(o.ID))
				d.users.EXPECT().GetUser(mock.Anything, agent.ID).Return(agent, nil)
				d.assignments.EXPECT().
					SaveAssignment(mock.Anything, mock.MatchedBy(func(a entities.DeliveryAssignment) bool {
						return a.OrderID == o.ID && a.Status == entities.DeliveryAssigned && *a.AgentID == agent.ID
					})).
					Return(nil)
				d.events.EXPECT().Publish(mock.Anything, o.ID.String(), mock.AnythingOfType("entities.DeliveryEvent")).Return(nil)
			},
		},
		{
			name:   "without agent",
			caller: staff,
			status: entities.OrderPending,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentByOrder(mock.Anything, o.ID).Return(entities.DeliveryAssignment{}, notFound(o.ID))
				d.assignments.EXPECT().SaveAssignment(mock.Anything, mock.Anything).Return(nil)
				d.events.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:         "customer may not assign",
			caller:       entities.Caller{UserID: customer.ID, Role: entities.RoleCustomer},
			status:       entities.OrderPending,
			mockBehavior: func(d deliveryDeps, o entities.Order) {},
			wantErr:      entities.ErrPermissionDenied,
		},
		{
			name:   "second assignment conflicts",
			caller: staff,
			status: entities.OrderProcessing,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentByOrder(mock.Anything, o.ID).
					Return(entities.DeliveryAssignment{ID: uuid.New(), OrderID: o.ID}, nil)
			},
			wantErr:   entities.ErrConflict,
			wantField: "order_id",
		},
		{
			name:   "storage uniqueness race conflicts",
			caller: staff,
			status: entities.OrderProcessing,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentByOrder(mock.Anything, o.ID).Return(entities.DeliveryAssignment{}, notFound(o.ID))
				d.assignments.EXPECT().SaveAssignment(mock.Anything, mock.Anything).
					Return(entities.NewConflictError("order_id", "already exists"))
			},
			wantErr:   entities.ErrConflict,
			wantField: "order_id",
		},
		{
			name:   "cancelled order",
			caller: staff,
			status: entities.OrderCancelled,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:    "agent is not a delivery user",
			caller:  staff,
			status:  entities.OrderPending,
			agentID: &customer.ID,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentByOrder(mock.Anything, o.ID).Return(entities.DeliveryAssignment{}, notFound(o.ID))
				d.users.EXPECT().GetUser(mock.Anything, customer.ID).Return(customer, nil)
			},
			wantErr:   entities.ErrInvalidArgument,
			wantField: "agent_id",
		},
		{
			name:    "unknown agent",
			caller:  staff,
			status:  entities.OrderPending,
			agentID: &agent.ID,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentByOrder(mock.Anything, o.ID).Return(entities.DeliveryAssignment{}, notFound(o.ID))
				d.users.EXPECT().GetUser(mock.Anything, agent.ID).Return(entities.User{}, entities.NewNotFoundError("user_id", agent.ID))
			},
			wantErr:   entities.ErrNotFound,
			wantField: "agent_id",
		},
		{
			name:   "unknown order",
			caller: staff,
			status: entities.OrderPending,
			mockBehavior: func(d deliveryDeps, o entities.Order) {
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(entities.Order{}, notFound(o.ID))
			},
			wantErr:   entities.ErrNotFound,
			wantField: "order_id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeliveryDeps(t)
			order := entities.Order{ID: uuid.New(), UserID: customer.ID, Status: tc.status}
			tc.mockBehavior(d, order)

			got, err := d.service(t).AssignDelivery(context.Background(), tc.caller, entities.AssignDelivery{
				OrderID:               order.ID,
				AgentID:               tc.agentID,
				EstimatedDeliveryTime: &eta,
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				if tc.wantField != "" {
					assert.Equal(t, tc.wantField, entities.FieldOf(err))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.ID, got.OrderID)
			assert.Equal(t, entities.DeliveryAssigned, got.Status)
		})
	}
}

func TestDeliveryService_UpdateDelivery(t *testing.T) {
	type MockBehavior func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order)

	agentID := uuid.New()
	agent := entities.Caller{UserID: agentID, Role: entities.RoleDelivery}
	otherAgent := entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}
	staff := entities.Caller{UserID: uuid.New(), IsStaff: true}
	delivered := time.Now()
	notes := "left with the guard"
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		caller       entities.Caller
		current      entities.DeliveryStatus
		orderStatus  entities.OrderStatus
		update       entities.DeliveryUpdate
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.DeliveryStatus
	}{
		{
			name:        "pick up moves order out for delivery",
			caller:      agent,
			current:     entities.DeliveryAssigned,
			orderStatus: entities.OrderPending,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryPickedUp},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().UpdateOrderStatus(mock.Anything, o.ID, entities.OrderOutForDelivery, mock.Anything).Return(nil)
				d.assignments.EXPECT().UpdateAssignment(mock.Anything, mock.Anything).Return(nil)
				d.events.EXPECT().Publish(mock.Anything, o.ID.String(), mock.AnythingOfType("entities.DeliveryEvent")).Return(nil)
				d.events.EXPECT().Publish(mock.Anything, o.ID.String(), mock.AnythingOfType("entities.OrderEvent")).Return(nil)
			},
			wantStatus: entities.DeliveryPickedUp,
		},
		{
			name:        "delivered advances the order",
			caller:      agent,
			current:     entities.DeliveryInTransit,
			orderStatus: entities.OrderOutForDelivery,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryDelivered, ActualDeliveryTime: &delivered},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().UpdateOrderStatus(mock.Anything, o.ID, entities.OrderDelivered, mock.Anything).Return(nil)
				d.assignments.EXPECT().
					UpdateAssignment(mock.Anything, mock.MatchedBy(func(got entities.DeliveryAssignment) bool {
						return got.Status == entities.DeliveryDelivered && got.ActualDeliveryTime != nil
					})).
					Return(nil)
				d.events.EXPECT().Publish(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()
			},
			wantStatus: entities.DeliveryDelivered,
		},
		{
			name:        "in transit keeps order already out for delivery",
			caller:      agent,
			current:     entities.DeliveryPickedUp,
			orderStatus: entities.OrderOutForDelivery,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryInTransit},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
				d.assignments.EXPECT().UpdateAssignment(mock.Anything, mock.Anything).Return(nil)
				d.events.EXPECT().Publish(mock.Anything, o.ID.String(), mock.AnythingOfType("entities.DeliveryEvent")).Return(nil).Once()
			},
			wantStatus: entities.DeliveryInTransit,
		},
		{
			name:        "failed leaves the order alone",
			caller:      staff,
			current:     entities.DeliveryInTransit,
			orderStatus: entities.OrderOutForDelivery,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryFailed},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
				d.assignments.EXPECT().UpdateAssignment(mock.Anything, mock.Anything).Return(nil)
				d.events.EXPECT().Publish(mock.Anything, mock.Anything, mock.AnythingOfType("entities.DeliveryEvent")).Return(nil).Once()
			},
			wantStatus: entities.DeliveryFailed,
		},
		{
			name:        "notes only keep the status",
			caller:      agent,
			current:     entities.DeliveryPickedUp,
			orderStatus: entities.OrderOutForDelivery,
			update:      entities.DeliveryUpdate{Notes: &notes},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
				d.assignments.EXPECT().UpdateAssignment(mock.Anything, mock.Anything).Return(nil)
				d.events.EXPECT().
					Publish(mock.Anything, o.ID.String(), mock.MatchedBy(func(e entities.DeliveryEvent) bool {
						return e.Type == entities.EventDeliveryUpdated
					})).
					Return(nil).Once()
			},
			wantStatus: entities.DeliveryPickedUp,
		},
		{
			name:        "delivered without actual time",
			caller:      agent,
			current:     entities.DeliveryInTransit,
			orderStatus: entities.OrderOutForDelivery,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryDelivered},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
			},
			wantErr: entities.ErrInvalidArgument,
		},
		{
			name:        "terminal assignment",
			caller:      staff,
			current:     entities.DeliveryFailed,
			orderStatus: entities.OrderCancelled,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryPickedUp},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:        "order that cannot follow the delivery",
			caller:      staff,
			current:     entities.DeliveryAssigned,
			orderStatus: entities.OrderDelivered,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryPickedUp},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
			},
			wantErr: entities.ErrInvalidState,
		},
		{
			name:        "another agent does not see it",
			caller:      otherAgent,
			current:     entities.DeliveryAssigned,
			orderStatus: entities.OrderProcessing,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryPickedUp},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:        "agent changed before the row was locked",
			caller:      agent,
			current:     entities.DeliveryAssigned,
			orderStatus: entities.OrderProcessing,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryPickedUp},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				reassigned := a
				reassigned.AgentID = &otherAgent.UserID
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(reassigned, nil)
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:        "storage failure",
			caller:      agent,
			current:     entities.DeliveryAssigned,
			orderStatus: entities.OrderOutForDelivery,
			update:      entities.DeliveryUpdate{Status: entities.DeliveryPickedUp},
			mockBehavior: func(d deliveryDeps, a entities.DeliveryAssignment, o entities.Order) {
				d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)
				d.orders.EXPECT().GetOrderForUpdate(mock.Anything, o.ID).Return(o, nil)
				d.assignments.EXPECT().GetAssignmentForUpdate(mock.Anything, a.ID).Return(a, nil)
				d.assignments.EXPECT().UpdateAssignment(mock.Anything, mock.Anything).Return(dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeliveryDeps(t)
			order := entities.Order{ID: uuid.New(), UserID: uuid.New(), Status: tc.orderStatus}
			assignment := entities.DeliveryAssignment{ID: uuid.New(), OrderID: order.ID, AgentID: &agentID, Status: tc.current}
			tc.mockBehavior(d, assignment, order)

			got, err := d.service(t).UpdateDelivery(context.Background(), tc.caller, assignment.ID, tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestDeliveryService_GetDelivery(t *testing.T) {
	agentID := uuid.New()
	a := entities.DeliveryAssignment{ID: uuid.New(), AgentID: &agentID, Status: entities.DeliveryAssigned}

	testCases := []struct {
		name    string
		caller  entities.Caller
		wantErr error
	}{
		{name: "assigned agent", caller: entities.Caller{UserID: agentID, Role: entities.RoleDelivery}},
		{name: "owner role", caller: entities.Caller{UserID: uuid.New(), Role: entities.RoleOwner}},
		{name: "other agent", caller: entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}, wantErr: entities.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeliveryDeps(t)
			d.assignments.EXPECT().GetAssignment(mock.Anything, a.ID).Return(a, nil)

			got, err := d.service(t).GetDelivery(context.Background(), tc.caller, a.ID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, a.ID, got.ID)
		})
	}
}

func TestDeliveryService_ListDeliveries_ScopesAgents(t *testing.T) {
	d := newDeliveryDeps(t)
	agent := entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}
	status := entities.DeliveryInTransit

	d.assignments.EXPECT().
		ListAssignments(mock.Anything, mock.MatchedBy(func(f entities.AssignmentFilter) bool {
			return f.AgentID != nil && *f.AgentID == agent.UserID && f.Status != nil && *f.Status == status
		})).
		Return([]entities.DeliveryAssignment{}, nil)

	_, err := d.service(t).ListDeliveries(context.Background(), agent, entities.AssignmentFilter{Status: &status})
	require.NoError(t, err)
}

func TestDeliveryService_CountOverdue(t *testing.T) {
	d := newDeliveryDeps(t)
	d.assignments.EXPECT().CountOverdue(mock.Anything, mock.AnythingOfType("time.Time")).Return(3, nil)

	n, err := d.service(t).CountOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
