package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var orderConstraints = map[string]string{
	"orders_user_id_fkey":         "user_id",
	"order_lines_product_id_fkey": "product_id",
}

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *orderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.UserID, o.TotalAmount, string(o.Status), string(o.PaymentMethod), o.CreatedAt, o.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if cerr := constraintError(err, orderConstraints); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *orderRepo) SaveOrderLines(ctx context.Context, orderID uuid.UUID, lines []entities.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}

	q := r.qb.Insert("order_lines").Columns(orderLineColumns...)
	for i, l := range lines {
		q = q.Values(l.ID, orderID, i, l.ProductID, l.Quantity, l.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		if cerr := constraintError(err, orderConstraints); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to insert order lines: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrder(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	return r.getOrder(ctx, id, "")
}

// GetOrderForUpdate loads the order and holds its row lock until the
// surrounding transaction ends.
func (r *orderRepo) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	return r.getOrder(ctx, id, "FOR UPDATE")
}

func (r *orderRepo) getOrder(ctx context.Context, id uuid.UUID, lock string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		Suffix(lock).
		MustSql()

	var o Order
	err := r.getContext(ctx, &o, query, args...)
	if isNoRows(err) {
		return entities.Order{}, entities.NewNotFoundError("order_id", id)
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	lines, err := r.linesByOrder(ctx, []uuid.UUID{o.ID})
	if err != nil {
		return entities.Order{}, err
	}
	return OrderToEntity(o, lines[o.ID]), nil
}

func (r *orderRepo) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).From("orders")
	if f.UserID != nil {
		q = q.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	query, args := page(q.OrderBy("created_at DESC", "id"), f.Limit, f.Offset).MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	if len(rows) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, o := range rows {
		ids[i] = o.ID
	}
	lines, err := r.linesByOrder(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, o := range rows {
		orders = append(orders, OrderToEntity(o, lines[o.ID]))
	}
	return orders, nil
}

func (r *orderRepo) linesByOrder(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderLine, error) {
	query, args := r.qb.Select(orderLineColumns...).
		From("order_lines").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position").
		MustSql()

	var rows []OrderLine
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order lines: %w", err)
	}

	byOrder := make(map[uuid.UUID][]OrderLine, len(orderIDs))
	for _, l := range rows {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	return byOrder, nil
}

func (r *orderRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatus, at time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		MustSql()

	if err := r.execAffectingOne(ctx, entities.NewNotFoundError("order_id", id), query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}
