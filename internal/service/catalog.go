package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/trm"
	"github.com/google/uuid"
)

type CatalogRepo interface {
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
	GetProductForUpdate(ctx context.Context, id uuid.UUID) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) error
	UpdateProduct(ctx context.Context, p entities.Product) error
	ListCategories(ctx context.Context) ([]entities.Category, error)
}

type catalogService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CatalogRepo
}

func NewCatalogService(logger *slog.Logger, txManager trm.Manager, repo CatalogRepo) *catalogService {
	return &catalogService{
		logger:    logger.With(slog.String("service", "catalog")),
		txManager: txManager,
		repo:      repo,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error) {
	if f.Ordering == "" {
		f.Ordering = entities.OrderByCreatedAtDesc
	}
	if !f.Ordering.Valid() {
		return nil, entities.NewInvalidArgumentError("ordering", fmt.Sprintf("unknown value %q", f.Ordering))
	}
	if f.Availability != nil && !f.Availability.Valid() {
		return nil, entities.NewInvalidArgumentError("availability", fmt.Sprintf("unknown value %q", *f.Availability))
	}

	products, err := s.repo.ListProducts(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, caller entities.Caller, p entities.Product) (entities.Product, error) {
	if !caller.Elevated() {
		return entities.Product{}, entities.NewPermissionDeniedError("only staff may manage products")
	}
	if p.Availability == "" {
		p.Availability = entities.InStock
	}
	if err := p.Validate(); err != nil {
		return entities.Product{}, err
	}

	at := now()
	p.ID = uuid.New()
	p.CreatedAt, p.UpdatedAt = at, at

	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return entities.Product{}, fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.Info("product created", slog.String("product_id", p.ID.String()))
	return p, nil
}

// UpdateProduct changes the catalog entry only. Lines of existing orders keep
// the price they captured.
func (s *catalogService) UpdateProduct(ctx context.Context, caller entities.Caller, id uuid.UUID, patch entities.ProductPatch) (entities.Product, error) {
	if !caller.Elevated() {
		return entities.Product{}, entities.NewPermissionDeniedError("only staff may manage products")
	}

	var product entities.Product
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		p, err := s.repo.GetProductForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		if err := p.Apply(patch, now()); err != nil {
			return err
		}
		if err := s.repo.UpdateProduct(ctx, p); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		product = p
		return nil
	})
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("product updated", slog.String("product_id", product.ID.String()))
	return product, nil
}
