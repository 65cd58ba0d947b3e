package entities

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderProcessing     OrderStatus = "processing"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// orderFlow is the forward path of an order. Cancellation branches off it.
var orderFlow = []OrderStatus{OrderPending, OrderProcessing, OrderOutForDelivery, OrderDelivered}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:        {OrderProcessing, OrderCancelled},
	OrderProcessing:     {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered},
}

func (s OrderStatus) Valid() bool {
	return s == OrderCancelled || slices.Contains(orderFlow, s)
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(orderTransitions[s], next)
}

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return true
	}
	return false
}

type OrderLine struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Lines         []OrderLine
	TotalAmount   decimal.Decimal
	Status        OrderStatus
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MaxLineQuantity bounds a single order line.
const MaxLineQuantity = 10000

// LineRequest is one requested (product, quantity) pair of a new order.
type LineRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

type CreateOrder struct {
	// UserID is honoured only for elevated callers; others order for themselves.
	UserID        uuid.UUID
	PaymentMethod PaymentMethod
	Lines         []LineRequest
}

// Validate checks the request shape without touching the catalog.
func (r CreateOrder) Validate() error {
	if !r.PaymentMethod.Valid() {
		return NewInvalidArgumentError("payment_method", fmt.Sprintf("unknown value %q", r.PaymentMethod))
	}
	if len(r.Lines) == 0 {
		return NewInvalidArgumentError("items", "at least one item is required")
	}
	for i, l := range r.Lines {
		if l.ProductID == uuid.Nil {
			return NewInvalidArgumentError(fmt.Sprintf("items[%d].product_id", i), "is required")
		}
		if l.Quantity < 1 {
			return NewInvalidArgumentError(fmt.Sprintf("items[%d].quantity", i), "must be at least 1")
		}
		if l.Quantity > MaxLineQuantity {
			return NewInvalidArgumentError(fmt.Sprintf("items[%d].quantity", i), fmt.Sprintf("must not exceed %d", MaxLineQuantity))
		}
	}
	return nil
}

// NewOrderLine captures the product's effective price at this instant.
func NewOrderLine(orderID uuid.UUID, p Product, quantity int) (OrderLine, error) {
	if quantity < 1 {
		return OrderLine{}, NewInvalidArgumentError("quantity", "must be at least 1")
	}
	return OrderLine{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: p.ID,
		Quantity:  quantity,
		Price:     p.EffectivePrice(),
	}, nil
}

// NewOrder builds a pending order whose total is the exact sum of its line subtotals.
func NewOrder(id, userID uuid.UUID, method PaymentMethod, lines []OrderLine, at time.Time) Order {
	return Order{
		ID:            id,
		UserID:        userID,
		Lines:         lines,
		TotalAmount:   TotalOf(lines),
		Status:        OrderPending,
		PaymentMethod: method,
		CreatedAt:     at,
		UpdatedAt:     at,
	}
}

// CheckTotal rejects an order whose total does not fit the stored amount.
func (o Order) CheckTotal() error {
	if o.TotalAmount.GreaterThan(MaxAmount) {
		return NewInvalidArgumentError("items", fmt.Sprintf("order total %s exceeds %s", o.TotalAmount.StringFixed(2), MaxAmount.StringFixed(2)))
	}
	return nil
}

func TotalOf(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (o *Order) TransitionTo(next OrderStatus, at time.Time) error {
	if !next.Valid() {
		return NewInvalidArgumentError("status", fmt.Sprintf("unknown value %q", next))
	}
	if !o.Status.CanTransitionTo(next) {
		return NewInvalidStateError("status", fmt.Sprintf("cannot move order from %s to %s", o.Status, next))
	}
	o.Status = next
	o.UpdatedAt = at
	return nil
}

// AdvanceTo walks the forward flow one legal step at a time until the order
// reaches target. It is a no-op when the order is already there.
func (o *Order) AdvanceTo(target OrderStatus, at time.Time) error {
	to := slices.Index(orderFlow, target)
	if to < 0 {
		return NewInvalidArgumentError("status", fmt.Sprintf("%s is not on the delivery path", target))
	}
	from := slices.Index(orderFlow, o.Status)
	if from < 0 || from > to {
		return NewInvalidStateError("status", fmt.Sprintf("cannot advance order from %s to %s", o.Status, target))
	}
	for _, step := range orderFlow[from+1 : to+1] {
		if err := o.TransitionTo(step, at); err != nil {
			return err
		}
	}
	return nil
}

type OrderFilter struct {
	UserID *uuid.UUID
	Status *OrderStatus
	Limit  uint64
	Offset uint64
}
