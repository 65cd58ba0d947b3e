package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, entities.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrInvalidState):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entities.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrGeocoderUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError renders a service error. Unclassified errors are logged and
// hidden behind a generic 500.
func writeError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error, msg string) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", code)
		return
	}

	var e *entities.Error
	if errors.As(err, &e) {
		utils.WriteFieldError(w, e.Error(), e.Field, code)
		return
	}
	utils.WriteError(w, err.Error(), code)
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, entities.NewInvalidArgumentError(name, "must be a valid uuid")
	}
	return id, nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, entities.NewInvalidArgumentError(name, "must be an integer")
	}
	return id, nil
}

const (
	defaultLimit = 50
	maxLimit     = 100
)

// page reads limit and offset from the query, clamping limit to maxLimit.
func page(r *http.Request) (limit, offset uint64, err error) {
	q := r.URL.Query()
	limit = defaultLimit
	if v := q.Get("limit"); v != "" {
		if limit, err = strconv.ParseUint(v, 10, 64); err != nil || limit == 0 {
			return 0, 0, entities.NewInvalidArgumentError("limit", "must be a positive integer")
		}
	}
	limit = min(limit, maxLimit)
	if v := q.Get("offset"); v != "" {
		if offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return 0, 0, entities.NewInvalidArgumentError("offset", "must be a non-negative integer")
		}
	}
	return limit, offset, nil
}

func uuidQuery(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, entities.NewInvalidArgumentError(name, "must be a valid uuid")
	}
	return &id, nil
}

// callerOf returns the caller put in place by middleware.RequireCaller.
func callerOf(r *http.Request) entities.Caller {
	c, _ := middleware.CallerFrom(r.Context())
	return c
}
