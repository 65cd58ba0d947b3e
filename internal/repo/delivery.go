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

var assignmentConstraints = map[string]string{
	"delivery_assignments_order_id_key":  "order_id",
	"delivery_assignments_order_id_fkey": "order_id",
	"delivery_assignments_agent_id_fkey": "agent_id",
}

var activeDeliveryStatuses = []string{
	string(entities.DeliveryAssigned),
	string(entities.DeliveryPickedUp),
	string(entities.DeliveryInTransit),
}

type deliveryRepo struct {
	postgresRepo
}

func NewDeliveryRepo(db *sqlx.DB) *deliveryRepo {
	return &deliveryRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *deliveryRepo) SaveAssignment(ctx context.Context, a entities.DeliveryAssignment) error {
	query, args := r.qb.Insert("delivery_assignments").
		Columns(assignmentColumns...).
		Values(
			a.ID, a.OrderID, nullUUID(a.AgentID), string(a.Status), nullTime(a.EstimatedDeliveryTime),
			nullTime(a.ActualDeliveryTime), nullString(a.Notes), a.CreatedAt, a.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if cerr := constraintError(err, assignmentConstraints); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to insert delivery assignment: %w", err)
	}
	return nil
}

func (r *deliveryRepo) GetAssignment(ctx context.Context, id uuid.UUID) (entities.DeliveryAssignment, error) {
	return r.getAssignment(ctx, sq.Eq{"id": id}, "", entities.NewNotFoundError("assignment_id", id))
}

func (r *deliveryRepo) GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (entities.DeliveryAssignment, error) {
	return r.getAssignment(ctx, sq.Eq{"id": id}, "FOR UPDATE", entities.NewNotFoundError("assignment_id", id))
}

// GetAssignmentByOrder locks the assignment of the order, if any. Callers
// must already hold the order row lock.
func (r *deliveryRepo) GetAssignmentByOrder(ctx context.Context, orderID uuid.UUID) (entities.DeliveryAssignment, error) {
	return r.getAssignment(ctx, sq.Eq{"order_id": orderID}, "FOR UPDATE", entities.NewNotFoundError("order_id", orderID))
}

func (r *deliveryRepo) getAssignment(ctx context.Context, where sq.Eq, lock string, notFound error) (entities.DeliveryAssignment, error) {
	query, args := r.qb.Select(assignmentColumns...).
		From("delivery_assignments").
		Where(where).
		Suffix(lock).
		MustSql()

	var a DeliveryAssignment
	err := r.getContext(ctx, &a, query, args...)
	if isNoRows(err) {
		return entities.DeliveryAssignment{}, notFound
	}
	if err != nil {
		return entities.DeliveryAssignment{}, fmt.Errorf("failed to get delivery assignment: %w", err)
	}
	return AssignmentToEntity(a), nil
}

func (r *deliveryRepo) ListAssignments(ctx context.Context, f entities.AssignmentFilter) ([]entities.DeliveryAssignment, error) {
	q := r.qb.Select(assignmentColumns...).From("delivery_assignments")
	if f.AgentID != nil {
		q = q.Where(sq.Eq{"agent_id": *f.AgentID})
	}
	if f.OrderID != nil {
		q = q.Where(sq.Eq{"order_id": *f.OrderID})
	}
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	query, args := page(q.OrderBy("created_at DESC", "id"), f.Limit, f.Offset).MustSql()

	var rows []DeliveryAssignment
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select delivery assignments: %w", err)
	}

	assignments := make([]entities.DeliveryAssignment, 0, len(rows))
	for _, a := range rows {
		assignments = append(assignments, AssignmentToEntity(a))
	}
	return assignments, nil
}

func (r *deliveryRepo) UpdateAssignment(ctx context.Context, a entities.DeliveryAssignment) error {
	query, args := r.qb.Update("delivery_assignments").
		SetMap(map[string]any{
			"agent_id":                nullUUID(a.AgentID),
			"status":                  string(a.Status),
			"estimated_delivery_time": nullTime(a.EstimatedDeliveryTime),
			"actual_delivery_time":    nullTime(a.ActualDeliveryTime),
			"delivery_notes":          nullString(a.Notes),
			"updated_at":              a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID}).
		MustSql()

	err := r.execAffectingOne(ctx, entities.NewNotFoundError("assignment_id", a.ID), query, args...)
	if cerr := constraintError(err, assignmentConstraints); cerr != nil {
		return cerr
	}
	if err != nil {
		return fmt.Errorf("failed to update delivery assignment: %w", err)
	}
	return nil
}

// CountOverdue counts active assignments whose estimated delivery time is
// before now.
func (r *deliveryRepo) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("delivery_assignments").
		Where(sq.Eq{"status": activeDeliveryStatuses}).
		Where(sq.Lt{"estimated_delivery_time": now}).
		MustSql()

	var n int
	if err := r.getContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count overdue deliveries: %w", err)
	}
	return n, nil
}
