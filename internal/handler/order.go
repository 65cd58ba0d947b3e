package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, caller entities.Caller, req entities.CreateOrder) (entities.Order, error)
	TransitionOrder(ctx context.Context, caller entities.Caller, id uuid.UUID, next entities.OrderStatus) (entities.Order, error)
	GetOrder(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, caller entities.Caller, f entities.OrderFilter) ([]entities.Order, error)
}

type orderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
}

func NewOrderHandler(logger *slog.Logger, orders OrderService) *orderHandler {
	return &orderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: utils.NewValidator(),
		orders:   orders,
	}
}

func (h *orderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.RequireCaller)
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/{id}", h.GetOrder)
		r.Patch("/{id}", h.TransitionOrder)
	})
}

func (h *orderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.CreateOrder(r.Context(), callerOf(r), CreateOrderJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to create order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

func (h *orderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	f, err := orderFilter(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to parse order filter")
		return
	}

	orders, err := h.orders.ListOrders(r.Context(), callerOf(r), f)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list orders")
		return
	}
	utils.WriteJSON(w, mapSlice(orders, OrderEntityToJSON), http.StatusOK)
}

func (h *orderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid order id")
		return
	}

	order, err := h.orders.GetOrder(r.Context(), callerOf(r), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to get order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *orderHandler) TransitionOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid order id")
		return
	}

	var req TransitionOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.TransitionOrder(r.Context(), callerOf(r), id, entities.OrderStatus(req.Status))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to transition order")
		return
	}
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func orderFilter(r *http.Request) (entities.OrderFilter, error) {
	var (
		f   entities.OrderFilter
		err error
	)
	if f.UserID, err = uuidQuery(r, "user"); err != nil {
		return f, err
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := entities.OrderStatus(v)
		if !status.Valid() {
			return f, entities.NewInvalidArgumentError("status", "unknown value "+v)
		}
		f.Status = &status
	}
	f.Limit, f.Offset, err = page(r)
	return f, err
}
