package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/entities"
	"github.com/SergeyBogomolovv/delivery-commerce-service/pkg/utils"
	"github.com/google/uuid"
)

const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"
	HeaderUserStaff = "X-User-Staff"
)

type callerKey struct{}

// WithCaller returns a copy of ctx carrying the caller.
func WithCaller(ctx context.Context, c entities.Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

func CallerFrom(ctx context.Context) (entities.Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(entities.Caller)
	return c, ok
}

// Caller reads the identity headers set by the gateway. Requests without
// X-User-ID pass through anonymously. Malformed headers are rejected with 401.
func Caller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		caller, ok := parseCaller(raw, r.Header.Get(HeaderUserRole), r.Header.Get(HeaderUserStaff))
		if !ok {
			utils.WriteError(w, "invalid caller headers", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}

// RequireCaller rejects anonymous requests with 401.
func RequireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CallerFrom(r.Context()); !ok {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseCaller(id, role, staff string) (entities.Caller, bool) {
	userID, err := uuid.Parse(id)
	if err != nil || userID == uuid.Nil {
		return entities.Caller{}, false
	}

	c := entities.Caller{UserID: userID, Role: entities.RoleCustomer}
	if role != "" {
		c.Role = entities.Role(role)
		if !c.Role.Valid() {
			return entities.Caller{}, false
		}
	}
	if staff != "" {
		c.IsStaff, err = strconv.ParseBool(staff)
		if err != nil {
			return entities.Caller{}, false
		}
	}
	return c, true
}
