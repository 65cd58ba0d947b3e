package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var userConstraints = map[string]string{
	"users_username_key":     "username",
	"users_phone_number_key": "phone_number",
}

var addressConstraints = map[string]string{
	"addresses_user_id_fkey":          "user_id",
	"addresses_state_id_fkey":         "state_id",
	"addresses_city_id_fkey":          "city_id",
	"addresses_area_id_fkey":          "area_id",
	"addresses_one_primary_per_user": "is_primary",
}

type accountRepo struct {
	postgresRepo
}

func NewAccountRepo(db *sqlx.DB) *accountRepo {
	return &accountRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *accountRepo) GetUser(ctx context.Context, id uuid.UUID) (entities.User, error) {
	return r.getUser(ctx, id, "")
}

// GetUserForUpdate locks the user row until the surrounding transaction ends.
func (r *accountRepo) GetUserForUpdate(ctx context.Context, id uuid.UUID) (entities.User, error) {
	return r.getUser(ctx, id, "FOR UPDATE")
}

func (r *accountRepo) getUser(ctx context.Context, id uuid.UUID, lock string) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		Suffix(lock).
		MustSql()

	var u User
	err := r.getContext(ctx, &u, query, args...)
	if isNoRows(err) {
		return entities.User{}, entities.NewNotFoundError("user_id", id)
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(u), nil
}

func (r *accountRepo) CreateUser(ctx context.Context, u entities.User) error {
	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(
			u.ID, u.Username, u.Email, u.PhoneNumber, string(u.Role), u.IsStaff,
			nullFloat64(u.Latitude), nullFloat64(u.Longitude), string(u.PreferredLanguage),
			u.NotificationEnabled, u.EmailNotifications, u.WhatsappNotifications,
			u.CreatedAt, u.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if cerr := constraintError(err, userConstraints); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// UpdateProfile stores the editable profile fields of the user.
func (r *accountRepo) UpdateProfile(ctx context.Context, u entities.User) error {
	query, args := r.qb.Update("users").
		SetMap(map[string]any{
			"email":                  u.Email,
			"preferred_language":     string(u.PreferredLanguage),
			"notification_enabled":   u.NotificationEnabled,
			"email_notifications":    u.EmailNotifications,
			"whatsapp_notifications": u.WhatsappNotifications,
			"latitude":               nullFloat64(u.Latitude),
			"longitude":              nullFloat64(u.Longitude),
			"updated_at":             u.UpdatedAt,
		}).
		Where(sq.Eq{"id": u.ID}).
		MustSql()

	err := r.execAffectingOne(ctx, entities.NewNotFoundError("user_id", u.ID), query, args...)
	if cerr := constraintError(err, userConstraints); cerr != nil {
		return cerr
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *accountRepo) CreateAddress(ctx context.Context, a entities.Address) error {
	query, args := r.qb.Insert("addresses").
		Columns(addressColumns...).
		Values(
			a.ID, a.UserID, string(a.Type), nullInt64(a.StateID), nullInt64(a.CityID), nullInt64(a.AreaID),
			a.StreetAddress, nullString(a.Landmark), nullString(a.Pincode), a.IsPrimary,
			nullFloat64(a.Latitude), nullFloat64(a.Longitude), a.CreatedAt, a.CreatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if cerr := constraintError(err, addressConstraints); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to insert address: %w", err)
	}
	return nil
}

func (r *accountRepo) GetAddress(ctx context.Context, id uuid.UUID) (entities.Address, error) {
	return r.getAddress(ctx, id, "")
}

// GetAddressForUpdate locks the address row until the surrounding transaction ends.
func (r *accountRepo) GetAddressForUpdate(ctx context.Context, id uuid.UUID) (entities.Address, error) {
	return r.getAddress(ctx, id, "FOR UPDATE")
}

func (r *accountRepo) getAddress(ctx context.Context, id uuid.UUID, lock string) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": id}).
		Suffix(lock).
		MustSql()

	var a Address
	err := r.getContext(ctx, &a, query, args...)
	if isNoRows(err) {
		return entities.Address{}, entities.NewNotFoundError("address_id", id)
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(a), nil
}

func (r *accountRepo) UpdateAddress(ctx context.Context, a entities.Address) error {
	query, args := r.qb.Update("addresses").
		SetMap(map[string]any{
			"address_type":   string(a.Type),
			"state_id":       nullInt64(a.StateID),
			"city_id":        nullInt64(a.CityID),
			"area_id":        nullInt64(a.AreaID),
			"street_address": a.StreetAddress,
			"landmark":       nullString(a.Landmark),
			"pincode":        nullString(a.Pincode),
			"is_primary":     a.IsPrimary,
			"latitude":       nullFloat64(a.Latitude),
			"longitude":      nullFloat64(a.Longitude),
			"updated_at":     a.UpdatedAt,
		}).
		Where(sq.Eq{"id": a.ID}).
		MustSql()

	err := r.execAffectingOne(ctx, entities.NewNotFoundError("address_id", a.ID), query, args...)
	if cerr := constraintError(err, addressConstraints); cerr != nil {
		return cerr
	}
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

func (r *accountRepo) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	query, args := r.qb.Delete("addresses").
		Where(sq.Eq{"id": id}).
		MustSql()

	if err := r.execAffectingOne(ctx, entities.NewNotFoundError("address_id", id), query, args...); err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete address: %w", err)
	}
	return nil
}

// ClearPrimaryAddress drops the primary flag from every address of the user.
func (r *accountRepo) ClearPrimaryAddress(ctx context.Context, userID uuid.UUID) error {
	query, args := r.qb.Update("addresses").
		Set("is_primary", false).
		Where(sq.Eq{"user_id": userID, "is_primary": true}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear primary address: %w", err)
	}
	return nil
}

func (r *accountRepo) ListAddresses(ctx context.Context, userID uuid.UUID) ([]entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("is_primary DESC", "created_at DESC").
		MustSql()

	var rows []Address
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	addresses := make([]entities.Address, 0, len(rows))
	for _, a := range rows {
		addresses = append(addresses, AddressToEntity(a))
	}
	return addresses, nil
}
