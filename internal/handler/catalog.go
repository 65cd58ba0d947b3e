package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CatalogService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, error)
	ListCategories(ctx context.Context) ([]entities.Category, error)
	CreateProduct(ctx context.Context, caller entities.Caller, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, caller entities.Caller, id uuid.UUID, patch entities.ProductPatch) (entities.Product, error)
}

type catalogHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  CatalogService
}

func NewCatalogHandler(logger *slog.Logger, catalog CatalogService) *catalogHandler {
	return &catalogHandler{
		logger:   logger.With(slog.String("handler", "catalog")),
		validate: utils.NewValidator(),
		catalog:  catalog,
	}
}

func (h *catalogHandler) Init(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)

		r.With(middleware.RequireCaller).Post("/", h.CreateProduct)
		r.With(middleware.RequireCaller).Patch("/{id}", h.UpdateProduct)
	})
}

func (h *catalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	f, err := productFilter(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to parse product filter")
		return
	}

	products, err := h.catalog.ListProducts(r.Context(), f)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list products")
		return
	}
	utils.WriteJSON(w, mapSlice(products, ProductEntityToJSON), http.StatusOK)
}

func (h *catalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid product id")
		return
	}

	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to get product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusOK)
}

func (h *catalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list categories")
		return
	}
	utils.WriteJSON(w, mapSlice(categories, CategoryEntityToJSON), http.StatusOK)
}

func (h *catalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	p, err := h.catalog.CreateProduct(r.Context(), callerOf(r), CreateProductJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to create product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusCreated)
}

func (h *catalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid product id")
		return
	}

	var req UpdateProductRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	p, err := h.catalog.UpdateProduct(r.Context(), callerOf(r), id, UpdateProductJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to update product")
		return
	}
	utils.WriteJSON(w, ProductEntityToJSON(p), http.StatusOK)
}

func productFilter(r *http.Request) (entities.ProductFilter, error) {
	q := r.URL.Query()
	f := entities.ProductFilter{
		Search:   q.Get("search"),
		Ordering: entities.ProductOrdering(q.Get("ordering")),
	}

	if v := q.Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, entities.NewInvalidArgumentError("category", "must be an integer")
		}
		f.CategoryID = &id
	}
	if v := q.Get("availability"); v != "" {
		a := entities.Availability(v)
		f.Availability = &a
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return f, entities.NewInvalidArgumentError("featured", "must be a boolean")
		}
		f.IsFeatured = &featured
	}

	var err error
	f.Limit, f.Offset, err = page(r)
	return f, err
}
