package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var productConstraints = map[string]string{
	"products_category_id_fkey": "category_id",
}

var productOrdering = map[entities.ProductOrdering]string{
	entities.OrderByPriceAsc:      "price ASC, id",
	entities.OrderByPriceDesc:     "price DESC, id",
	entities.OrderByCreatedAtAsc:  "created_at ASC, id",
	entities.OrderByCreatedAtDesc: "created_at DESC, id",
}

type catalogRepo struct {
	postgresRepo
}

func NewCatalogRepo(db *sqlx.DB) *catalogRepo {
	return &catalogRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *catalogRepo) GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return r.getProduct(ctx, id, "")
}

func (r *catalogRepo) GetProductForUpdate(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return r.getProduct(ctx, id, "FOR UPDATE")
}

func (r *catalogRepo) getProduct(ctx context.Context, id uuid.UUID, lock string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id}).
		Suffix(lock).
		MustSql()

	var p Product
	err := r.getContext(ctx, &p, query, args...)
	if isNoRows(err) {
		return entities.Product{}, entities.NewNotFoundError("product_id", id)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(p), nil
}

func (r *catalogRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).From("products")

	if f.CategoryID != nil {
		q = q.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if f.Availability != nil {
		q = q.Where(sq.Eq{"availability": string(*f.Availability)})
	}
	if f.IsFeatured != nil {
		q = q.Where(sq.Eq{"is_featured": *f.IsFeatured})
	}
	if f.Search != "" {
		pattern := containsPattern(f.Search)
		q = q.Where(sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}})
	}

	ordering, ok := productOrdering[f.Ordering]
	if !ok {
		ordering = productOrdering[entities.OrderByCreatedAtDesc]
	}
	query, args := page(q.OrderBy(ordering), f.Limit, f.Offset).MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, nil
}

func (r *catalogRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, nullInt64(p.CategoryID), p.Name, nullString(p.Description), p.Price, p.DiscountPrice,
			p.WeightGrams, string(p.Availability), p.IsFeatured, p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if cerr := constraintError(err, productConstraints); cerr != nil {
			return cerr
		}
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *catalogRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		SetMap(map[string]any{
			"category_id":    nullInt64(p.CategoryID),
			"name":           p.Name,
			"description":    nullString(p.Description),
			"price":          p.Price,
			"discount_price": p.DiscountPrice,
			"weight_grams":   p.WeightGrams,
			"availability":   string(p.Availability),
			"is_featured":    p.IsFeatured,
			"updated_at":     p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	err := r.execAffectingOne(ctx, entities.NewNotFoundError("product_id", p.ID), query, args...)
	if cerr := constraintError(err, productConstraints); cerr != nil {
		return cerr
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]entities.Category, error) {
	query, args := r.qb.Select("id", "name", "description").
		From("categories").
		OrderBy("name").
		MustSql()

	var rows []Category
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	categories := make([]entities.Category, 0, len(rows))
	for _, c := range rows {
		categories = append(categories, CategoryToEntity(c))
	}
	return categories, nil
}
