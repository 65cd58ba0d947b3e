package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/trm"
	"github.com/google/uuid"
)

type AssignmentRepo interface {
	SaveAssignment(ctx context.Context, a entities.DeliveryAssignment) error
	GetAssignment(ctx context.Context, id uuid.UUID) (entities.DeliveryAssignment, error)
	GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (entities.DeliveryAssignment, error)
	GetAssignmentByOrder(ctx context.Context, orderID uuid.UUID) (entities.DeliveryAssignment, error)
	ListAssignments(ctx context.Context, f entities.AssignmentFilter) ([]entities.DeliveryAssignment, error)
	UpdateAssignment(ctx context.Context, a entities.DeliveryAssignment) error
	CountOverdue(ctx context.Context, now time.Time) (int, error)
}

type deliveryService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	orders      OrderRepo
	assignments AssignmentRepo
	users       UserGetter
	events      EventPublisher
}

func NewDeliveryService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	assignments AssignmentRepo,
	users UserGetter,
	events EventPublisher,
) *deliveryService {
	return &deliveryService{
		logger:      logger.With(slog.String("service", "delivery")),
		txManager:   txManager,
		orders:      orders,
		assignments: assignments,
		users:       users,
		events:      events,
	}
}

func (s *deliveryService) AssignDelivery(ctx context.Context, caller entities.Caller, req entities.AssignDelivery) (entities.DeliveryAssignment, error) {
	if !caller.Elevated() {
		return entities.DeliveryAssignment{}, entities.NewPermissionDeniedError("only staff may assign deliveries")
	}
	if req.OrderID == uuid.Nil {
		return entities.DeliveryAssignment{}, entities.NewInvalidArgumentError("order_id", "is required")
	}

	var assignment entities.DeliveryAssignment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetOrderForUpdate(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}
		if o.Status.Terminal() {
			return entities.NewInvalidStateError("order_id", fmt.Sprintf("order is %s", o.Status))
		}

		_, err = s.assignments.GetAssignmentByOrder(ctx, o.ID)
		if err == nil {
			return entities.NewConflictError("order_id", "order already has a delivery assignment")
		}
		if !errors.Is(err, entities.ErrNotFound) {
			return fmt.Errorf("failed to get delivery assignment: %w", err)
		}

		if req.AgentID != nil {
			if err := s.checkAgent(ctx, *req.AgentID); err != nil {
				return err
			}
		}

		assignment = entities.NewDeliveryAssignment(req, now())
		if err := s.assignments.SaveAssignment(ctx, assignment); err != nil {
			return fmt.Errorf("failed to save delivery assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.DeliveryAssignment{}, err
	}

	s.logger.Debug("delivery assigned",
		slog.String("assignment_id", assignment.ID.String()),
		slog.String("order_id", assignment.OrderID.String()),
	)
	publish(ctx, s.logger, s.events, assignment.OrderID.String(), entities.NewDeliveryEvent(entities.EventDeliveryAssigned, assignment))
	return assignment, nil
}

func (s *deliveryService) checkAgent(ctx context.Context, agentID uuid.UUID) error {
	agent, err := s.users.GetUser(ctx, agentID)
	if errors.Is(err, entities.ErrNotFound) {
		return entities.NewNotFoundError("agent_id", agentID)
	}
	if err != nil {
		return fmt.Errorf("failed to get agent: %w", err)
	}
	if agent.Role != entities.RoleDelivery {
		return entities.NewInvalidArgumentError("agent_id", "user is not a delivery agent")
	}
	return nil
}

// UpdateDelivery applies u to the assignment and carries the parent order
// along the delivery path in the same transaction. Rows are locked order
// first, then assignment.
func (s *deliveryService) UpdateDelivery(ctx context.Context, caller entities.Caller, id uuid.UUID, u entities.DeliveryUpdate) (entities.DeliveryAssignment, error) {
	current, err := s.assignments.GetAssignment(ctx, id)
	if err != nil {
		return entities.DeliveryAssignment{}, fmt.Errorf("failed to get delivery assignment: %w", err)
	}
	if !current.VisibleTo(caller) {
		return entities.DeliveryAssignment{}, entities.NewNotFoundError("assignment_id", id)
	}

	var (
		assignment entities.DeliveryAssignment
		order      entities.Order
		orderMoved bool
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetOrderForUpdate(ctx, current.OrderID)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}
		a, err := s.assignments.GetAssignmentForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get delivery assignment: %w", err)
		}
		// The first read only finds the order to lock; the agent is
		// authoritative on the locked row.
		if !a.VisibleTo(caller) {
			return entities.NewNotFoundError("assignment_id", id)
		}

		at := now()
		if err := a.Apply(u, at); err != nil {
			return err
		}

		if target := a.Status.OrderStatus(); u.Status != "" && target != "" && o.Status != target {
			if err := o.AdvanceTo(target, at); err != nil {
				return err
			}
			if err := s.orders.UpdateOrderStatus(ctx, o.ID, o.Status, at); err != nil {
				return fmt.Errorf("failed to update order: %w", err)
			}
			orderMoved = true
		}

		if err := s.assignments.UpdateAssignment(ctx, a); err != nil {
			return fmt.Errorf("failed to update delivery assignment: %w", err)
		}

		assignment, order = a, o
		return nil
	})
	if err != nil {
		return entities.DeliveryAssignment{}, err
	}

	s.logger.Debug("delivery updated",
		slog.String("assignment_id", assignment.ID.String()),
		slog.String("status", string(assignment.Status)),
	)
	eventType := entities.EventDeliveryStatusChanged
	if u.Status == "" {
		eventType = entities.EventDeliveryUpdated
	}
	publish(ctx, s.logger, s.events, assignment.OrderID.String(), entities.NewDeliveryEvent(eventType, assignment))
	if orderMoved {
		publish(ctx, s.logger, s.events, order.ID.String(), entities.NewOrderEvent(entities.EventOrderStatusChanged, order))
	}
	return assignment, nil
}

func (s *deliveryService) GetDelivery(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.DeliveryAssignment, error) {
	a, err := s.assignments.GetAssignment(ctx, id)
	if err != nil {
		return entities.DeliveryAssignment{}, fmt.Errorf("failed to get delivery assignment: %w", err)
	}
	if !a.VisibleTo(caller) {
		return entities.DeliveryAssignment{}, entities.NewNotFoundError("assignment_id", id)
	}
	return a, nil
}

func (s *deliveryService) ListDeliveries(ctx context.Context, caller entities.Caller, f entities.AssignmentFilter) ([]entities.DeliveryAssignment, error) {
	if !caller.Elevated() {
		agentID := caller.UserID
		f.AgentID = &agentID
	}
	assignments, err := s.assignments.ListAssignments(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery assignments: %w", err)
	}
	return assignments, nil
}

// CountOverdue counts active assignments past their estimated delivery time.
func (s *deliveryService) CountOverdue(ctx context.Context) (int, error) {
	n, err := s.assignments.CountOverdue(ctx, now())
	if err != nil {
		return 0, fmt.Errorf("failed to count overdue deliveries: %w", err)
	}
	return n, nil
}
