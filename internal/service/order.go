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

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderLines(ctx context.Context, orderID uuid.UUID, lines []entities.OrderLine) error
	GetOrder(ctx context.Context, id uuid.UUID) (entities.Order, error)
	// GetOrderForUpdate must be called inside a transaction; the row stays
	// locked until it ends.
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus, at time.Time) error
}

type orderService struct {
	logger      *slog.Logger
	txManager   trm.Manager
	orders      OrderRepo
	assignments AssignmentRepo
	products    ProductGetter
	users       UserGetter
	events      EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	assignments AssignmentRepo,
	products ProductGetter,
	users UserGetter,
	events EventPublisher,
) *orderService {
	return &orderService{
		logger:      logger.With(slog.String("service", "order")),
		txManager:   txManager,
		orders:      orders,
		assignments: assignments,
		products:    products,
		users:       users,
		events:      events,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, caller entities.Caller, req entities.CreateOrder) (entities.Order, error) {
	if err := req.Validate(); err != nil {
		return entities.Order{}, err
	}

	userID := caller.UserID
	if caller.Elevated() && req.UserID != uuid.Nil {
		userID = req.UserID
	}
	if userID == uuid.Nil {
		return entities.Order{}, entities.NewInvalidArgumentError("user_id", "is required")
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.users.GetUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		orderID := uuid.New()
		lines := make([]entities.OrderLine, 0, len(req.Lines))
		for i, l := range req.Lines {
			field := fmt.Sprintf("items[%d].product_id", i)

			p, err := s.products.GetProduct(ctx, l.ProductID)
			if errors.Is(err, entities.ErrNotFound) {
				return entities.NewNotFoundError(field, l.ProductID)
			}
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}
			if p.Availability == entities.OutOfStock {
				return entities.NewInvalidArgumentError(field, "product is out of stock")
			}

			line, err := entities.NewOrderLine(orderID, p, l.Quantity)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		}

		order = entities.NewOrder(orderID, userID, req.PaymentMethod, lines, now())
		if err := order.CheckTotal(); err != nil {
			return err
		}

		if err := s.orders.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.orders.SaveOrderLines(ctx, order.ID, order.Lines); err != nil {
			return fmt.Errorf("failed to save order lines: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", slog.String("order_id", order.ID.String()), slog.String("total", order.TotalAmount.String()))
	publish(ctx, s.logger, s.events, order.ID.String(), entities.NewOrderEvent(entities.EventOrderCreated, order))
	return order, nil
}

// TransitionOrder moves the order to next. Cancelling also fails an active
// delivery assignment of the order.
func (s *orderService) TransitionOrder(ctx context.Context, caller entities.Caller, id uuid.UUID, next entities.OrderStatus) (entities.Order, error) {
	if !next.Valid() {
		return entities.Order{}, entities.NewInvalidArgumentError("status", fmt.Sprintf("unknown value %q", next))
	}

	var (
		order  entities.Order
		failed *entities.DeliveryAssignment
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get order: %w", err)
		}

		if !caller.Elevated() {
			if !caller.Owns(o.UserID) {
				return entities.NewNotFoundError("order_id", id)
			}
			if next != entities.OrderCancelled {
				return entities.NewPermissionDeniedError(fmt.Sprintf("customers may only cancel, not move to %s", next))
			}
		}

		at := now()
		if err := o.TransitionTo(next, at); err != nil {
			return err
		}
		if next == entities.OrderDelivered {
			if err := s.checkNoActiveAssignment(ctx, o.ID); err != nil {
				return err
			}
		}
		if err := s.orders.UpdateOrderStatus(ctx, o.ID, o.Status, at); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		if next == entities.OrderCancelled {
			a, err := s.failActiveAssignment(ctx, o.ID, at)
			if err != nil {
				return err
			}
			failed = a
		}

		order = o
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order status changed", slog.String("order_id", order.ID.String()), slog.String("status", string(order.Status)))
	publish(ctx, s.logger, s.events, order.ID.String(), entities.NewOrderEvent(entities.EventOrderStatusChanged, order))
	if failed != nil {
		publish(ctx, s.logger, s.events, order.ID.String(), entities.NewDeliveryEvent(entities.EventDeliveryStatusChanged, *failed))
	}
	return order, nil
}

// checkNoActiveAssignment keeps an order from being marked delivered behind
// the back of a running delivery; that delivery has to complete it instead.
func (s *orderService) checkNoActiveAssignment(ctx context.Context, orderID uuid.UUID) error {
	a, err := s.assignments.GetAssignmentByOrder(ctx, orderID)
	if errors.Is(err, entities.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get delivery assignment: %w", err)
	}
	if !a.Status.Terminal() {
		return entities.NewInvalidStateError("status", fmt.Sprintf("delivery %s is %s, complete it through the delivery", a.ID, a.Status))
	}
	return nil
}

// failActiveAssignment expects the order row to be locked already. It returns
// nil when the order has no assignment or it is already terminal.
func (s *orderService) failActiveAssignment(ctx context.Context, orderID uuid.UUID, at time.Time) (*entities.DeliveryAssignment, error) {
	a, err := s.assignments.GetAssignmentByOrder(ctx, orderID)
	if errors.Is(err, entities.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery assignment: %w", err)
	}
	if a.Status.Terminal() {
		return nil, nil
	}

	if err := a.Fail("order cancelled", at); err != nil {
		return nil, err
	}
	if err := s.assignments.UpdateAssignment(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update delivery assignment: %w", err)
	}
	return &a, nil
}

func (s *orderService) GetOrder(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.Order, error) {
	o, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	if !caller.Elevated() && !caller.Owns(o.UserID) {
		return entities.Order{}, entities.NewNotFoundError("order_id", id)
	}
	return o, nil
}

func (s *orderService) ListOrders(ctx context.Context, caller entities.Caller, f entities.OrderFilter) ([]entities.Order, error) {
	if !caller.Elevated() {
		userID := caller.UserID
		f.UserID = &userID
	}
	orders, err := s.orders.ListOrders(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
