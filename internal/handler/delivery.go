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

type DeliveryService interface {
	AssignDelivery(ctx context.Context, caller entities.Caller, req entities.AssignDelivery) (entities.DeliveryAssignment, error)
	UpdateDelivery(ctx context.Context, caller entities.Caller, id uuid.UUID, u entities.DeliveryUpdate) (entities.DeliveryAssignment, error)
	GetDelivery(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.DeliveryAssignment, error)
	ListDeliveries(ctx context.Context, caller entities.Caller, f entities.AssignmentFilter) ([]entities.DeliveryAssignment, error)
}

type deliveryHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	deliveries DeliveryService
}

func NewDeliveryHandler(logger *slog.Logger, deliveries DeliveryService) *deliveryHandler {
	return &deliveryHandler{
		logger:     logger.With(slog.String("handler", "delivery")),
		validate:   utils.NewValidator(),
		deliveries: deliveries,
	}
}

func (h *deliveryHandler) Init(r chi.Router) {
	r.Route("/deliveries", func(r chi.Router) {
		r.Use(middleware.RequireCaller)
		r.Post("/", h.AssignDelivery)
		r.Get("/", h.ListDeliveries)
		r.Get("/{id}", h.GetDelivery)
		r.Patch("/{id}", h.UpdateDelivery)
	})
}

func (h *deliveryHandler) AssignDelivery(w http.ResponseWriter, r *http.Request) {
	var req AssignDeliveryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	a, err := h.deliveries.AssignDelivery(r.Context(), callerOf(r), AssignDeliveryJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to assign delivery")
		return
	}
	utils.WriteJSON(w, DeliveryEntityToJSON(a), http.StatusCreated)
}

func (h *deliveryHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	f, err := assignmentFilter(r)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to parse delivery filter")
		return
	}

	list, err := h.deliveries.ListDeliveries(r.Context(), callerOf(r), f)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to list deliveries")
		return
	}
	utils.WriteJSON(w, mapSlice(list, DeliveryEntityToJSON), http.StatusOK)
}

func (h *deliveryHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid delivery id")
		return
	}

	a, err := h.deliveries.GetDelivery(r.Context(), callerOf(r), id)
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to get delivery")
		return
	}
	utils.WriteJSON(w, DeliveryEntityToJSON(a), http.StatusOK)
}

func (h *deliveryHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "invalid delivery id")
		return
	}

	var req UpdateDeliveryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	a, err := h.deliveries.UpdateDelivery(r.Context(), callerOf(r), id, UpdateDeliveryJSONToEntity(req))
	if err != nil {
		writeError(r.Context(), w, h.logger, err, "failed to update delivery")
		return
	}
	utils.WriteJSON(w, DeliveryEntityToJSON(a), http.StatusOK)
}

func assignmentFilter(r *http.Request) (entities.AssignmentFilter, error) {
	var (
		f   entities.AssignmentFilter
		err error
	)
	if f.OrderID, err = uuidQuery(r, "order"); err != nil {
		return f, err
	}
	if f.AgentID, err = uuidQuery(r, "agent"); err != nil {
		return f, err
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := entities.DeliveryStatus(v)
		if !status.Valid() {
			return f, entities.NewInvalidArgumentError("status", "unknown value "+v)
		}
		f.Status = &status
	}
	f.Limit, f.Offset, err = page(r)
	return f, err
}
