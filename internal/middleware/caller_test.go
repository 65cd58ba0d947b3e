package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCaller(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantCaller *entities.Caller
	}{
		{
			name:       "anonymous",
			wantStatus: http.StatusOK,
		},
		{
			name:       "defaults to customer",
			headers:    map[string]string{middleware.HeaderUserID: userID.String()},
			wantStatus: http.StatusOK,
			wantCaller: &entities.Caller{UserID: userID, Role: entities.RoleCustomer},
		},
		{
			name: "staff agent",
			headers: map[string]string{
				middleware.HeaderUserID:    userID.String(),
				middleware.HeaderUserRole:  "delivery",
				middleware.HeaderUserStaff: "true",
			},
			wantStatus: http.StatusOK,
			wantCaller: &entities.Caller{UserID: userID, Role: entities.RoleDelivery, IsStaff: true},
		},
		{
			name:       "malformed id",
			headers:    map[string]string{middleware.HeaderUserID: "42"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown role",
			headers: map[string]string{
				middleware.HeaderUserID:   userID.String(),
				middleware.HeaderUserRole: "root",
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "malformed staff flag",
			headers: map[string]string{
				middleware.HeaderUserID:    userID.String(),
				middleware.HeaderUserStaff: "maybe",
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got *entities.Caller
			h := middleware.Caller(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if c, ok := middleware.CallerFrom(r.Context()); ok {
					got = &c
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantCaller, got)
		})
	}
}

func TestRequireCaller(t *testing.T) {
	h := middleware.Caller(middleware.RequireCaller(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("identified", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.HeaderUserID, uuid.NewString())
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
