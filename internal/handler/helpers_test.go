package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type initer interface {
	Init(r chi.Router)
}

func newRouter(h initer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Caller)
	h.Init(r)
	return r
}

// serve performs a request as caller. A nil caller sends no identity headers.
func serve(r http.Handler, method, path, body string, caller *entities.Caller) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if caller != nil {
		req.Header.Set(middleware.HeaderUserID, caller.UserID.String())
		req.Header.Set(middleware.HeaderUserRole, string(caller.Role))
		req.Header.Set(middleware.HeaderUserStaff, strconv.FormatBool(caller.IsStaff))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func ptr[T any](v T) *T {
	return &v
}
