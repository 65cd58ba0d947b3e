package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type locationRepo struct {
	postgresRepo
}

func NewLocationRepo(db *sqlx.DB) *locationRepo {
	return &locationRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *locationRepo) ListStates(ctx context.Context) ([]entities.State, error) {
	query, args := r.qb.Select("id", "name", "code").
		From("states").
		OrderBy("name", "id").
		MustSql()

	var rows []State
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select states: %w", err)
	}

	states := make([]entities.State, 0, len(rows))
	for _, s := range rows {
		states = append(states, StateToEntity(s))
	}
	return states, nil
}

func (r *locationRepo) ListCities(ctx context.Context, stateID int64) ([]entities.City, error) {
	query, args := r.qb.Select("id", "state_id", "name", "is_urban").
		From("cities").
		Where(sq.Eq{"state_id": stateID}).
		OrderBy("name", "id").
		MustSql()

	var rows []City
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cities: %w", err)
	}

	cities := make([]entities.City, 0, len(rows))
	for _, c := range rows {
		cities = append(cities, CityToEntity(c))
	}
	return cities, nil
}

func (r *locationRepo) ListAreas(ctx context.Context, cityID int64) ([]entities.Area, error) {
	query, args := r.qb.Select("id", "city_id", "name", "pincode", "latitude", "longitude").
		From("areas").
		Where(sq.Eq{"city_id": cityID}).
		OrderBy("name", "id").
		MustSql()

	var rows []Area
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select areas: %w", err)
	}

	areas := make([]entities.Area, 0, len(rows))
	for _, a := range rows {
		areas = append(areas, AreaToEntity(a))
	}
	return areas, nil
}

func (r *locationRepo) GetState(ctx context.Context, id int64) (entities.State, error) {
	query, args := r.qb.Select("id", "name", "code").
		From("states").
		Where(sq.Eq{"id": id}).
		MustSql()

	var s State
	err := r.getContext(ctx, &s, query, args...)
	if isNoRows(err) {
		return entities.State{}, entities.NewNotFoundError("state", id)
	}
	if err != nil {
		return entities.State{}, fmt.Errorf("failed to get state: %w", err)
	}
	return StateToEntity(s), nil
}

func (r *locationRepo) GetCity(ctx context.Context, id int64) (entities.City, error) {
	query, args := r.qb.Select("id", "state_id", "name", "is_urban").
		From("cities").
		Where(sq.Eq{"id": id}).
		MustSql()

	var c City
	err := r.getContext(ctx, &c, query, args...)
	if isNoRows(err) {
		return entities.City{}, entities.NewNotFoundError("city", id)
	}
	if err != nil {
		return entities.City{}, fmt.Errorf("failed to get city: %w", err)
	}
	return CityToEntity(c), nil
}

func (r *locationRepo) GetArea(ctx context.Context, id int64) (entities.Area, error) {
	query, args := r.qb.Select("id", "city_id", "name", "pincode", "latitude", "longitude").
		From("areas").
		Where(sq.Eq{"id": id}).
		MustSql()

	var a Area
	err := r.getContext(ctx, &a, query, args...)
	if isNoRows(err) {
		return entities.Area{}, entities.NewNotFoundError("area", id)
	}
	if err != nil {
		return entities.Area{}, fmt.Errorf("failed to get area: %w", err)
	}
	return AreaToEntity(a), nil
}
