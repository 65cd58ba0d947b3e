package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/handler"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeliveryHandler_AssignDelivery(t *testing.T) {
	staff := entities.Caller{UserID: uuid.New(), Role: entities.RoleAdmin, IsStaff: true}
	orderID := uuid.New()
	agentID := uuid.New()
	assignment := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: orderID, AgentID: &agentID}, time.Now())

	testCases := []struct {
		name       string
		body       string
		mockErr    error
		callMock   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "OK",
			body:       `{"order_id":"` + orderID.String() + `","agent_id":"` + agentID.String() + `"}`,
			callMock:   true,
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"assigned"`,
		},
		{
			name:       "missing order",
			body:       `{"agent_id":"` + agentID.String() + `"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"order_id":"required"`,
		},
		{
			name:       "already assigned",
			body:       `{"order_id":"` + orderID.String() + `"}`,
			mockErr:    entities.NewConflictError("order_id", "order already has an assignment"),
			callMock:   true,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "agent is not a courier",
			body:       `{"order_id":"` + orderID.String() + `","agent_id":"` + agentID.String() + `"}`,
			mockErr:    entities.NewInvalidArgumentError("agent_id", "user is not a delivery agent"),
			callMock:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"agent_id"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockDeliveryService(t)
			if tc.callMock {
				svc.EXPECT().
					AssignDelivery(mock.Anything, staff, mock.MatchedBy(func(req entities.AssignDelivery) bool {
						return req.OrderID == orderID
					})).
					Return(assignment, tc.mockErr)
			}

			r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
			rec := serve(r, http.MethodPost, "/deliveries", tc.body, &staff)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestDeliveryHandler_UpdateDelivery(t *testing.T) {
	agent := entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}
	assignment := entities.NewDeliveryAssignment(entities.AssignDelivery{OrderID: uuid.New(), AgentID: &agent.UserID}, time.Now())
	path := "/deliveries/" + assignment.ID.String()

	t.Run("delivered", func(t *testing.T) {
		svc := mocks.NewMockDeliveryService(t)
		svc.EXPECT().
			UpdateDelivery(mock.Anything, agent, assignment.ID, mock.MatchedBy(func(u entities.DeliveryUpdate) bool {
				return u.Status == entities.DeliveryDelivered && u.ActualDeliveryTime != nil
			})).
			Return(assignment, nil)

		r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
		rec := serve(r, http.MethodPatch, path, `{"status":"delivered","actual_delivery_time":"2024-05-01T12:00:00Z"}`, &agent)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delivered without time", func(t *testing.T) {
		svc := mocks.NewMockDeliveryService(t)
		svc.EXPECT().
			UpdateDelivery(mock.Anything, agent, assignment.ID, mock.Anything).
			Return(entities.DeliveryAssignment{}, entities.NewInvalidArgumentError("actual_delivery_time", "is required when marking delivered"))

		r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
		rec := serve(r, http.MethodPatch, path, `{"status":"delivered"}`, &agent)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"field":"actual_delivery_time"`)
	})

	t.Run("malformed time", func(t *testing.T) {
		svc := mocks.NewMockDeliveryService(t)

		r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
		rec := serve(r, http.MethodPatch, path, `{"status":"delivered","actual_delivery_time":"noon"}`, &agent)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeliveryHandler_GetDelivery(t *testing.T) {
	agent := entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}
	id := uuid.New()

	svc := mocks.NewMockDeliveryService(t)
	svc.EXPECT().GetDelivery(mock.Anything, agent, id).Return(entities.DeliveryAssignment{}, entities.NewNotFoundError("assignment_id", id))

	r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
	rec := serve(r, http.MethodGet, "/deliveries/"+id.String(), "", &agent)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeliveryHandler_ListDeliveries(t *testing.T) {
	agent := entities.Caller{UserID: uuid.New(), Role: entities.RoleDelivery}
	orderID := uuid.New()

	t.Run("filters", func(t *testing.T) {
		svc := mocks.NewMockDeliveryService(t)
		svc.EXPECT().
			ListDeliveries(mock.Anything, agent, mock.MatchedBy(func(f entities.AssignmentFilter) bool {
				return f.OrderID != nil && *f.OrderID == orderID &&
					f.Status != nil && *f.Status == entities.DeliveryInTransit &&
					f.AgentID == nil && f.Limit == 50
			})).
			Return(nil, nil)

		r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/deliveries?order="+orderID.String()+"&status=in_transit", "", &agent)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("bad agent id", func(t *testing.T) {
		svc := mocks.NewMockDeliveryService(t)

		r := newRouter(handler.NewDeliveryHandler(newLogger(), svc))
		rec := serve(r, http.MethodGet, "/deliveries?agent=bob", "", &agent)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
