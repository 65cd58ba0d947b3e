package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/config"
	"github.com/SergeyBogomolovv/delivery-commerce-service/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls []string
}

type fakeConsumer struct {
	rec      *recorder
	consumed chan struct{}
}

func (c *fakeConsumer) Consume(ctx context.Context) {
	close(c.consumed)
	<-ctx.Done()
}

func (c *fakeConsumer) Close() error {
	c.rec.calls = append(c.rec.calls, "consumer")
	return nil
}

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.With(middleware.RequireCaller).Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestApp() *application {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetHTTPHandlers(pingHandler{})
	return a
}

func TestApplication_Routes(t *testing.T) {
	a := newTestApp()

	testCases := []struct {
		name       string
		path       string
		userID     string
		wantStatus int
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK},
		{name: "anonymous", path: "/ping", wantStatus: http.StatusUnauthorized},
		{name: "malformed caller", path: "/ping", userID: "root", wantStatus: http.StatusUnauthorized},
		{name: "identified", path: "/ping", userID: "6f1c1f9e-7a4e-4b8e-9d0f-2a7c1e5b9c11", wantStatus: http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.userID != "" {
				req.Header.Set(middleware.HeaderUserID, tc.userID)
			}
			rec := httptest.NewRecorder()
			a.httpSrv.Handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestApplication_Lifecycle(t *testing.T) {
	rec := &recorder{}
	consumer := &fakeConsumer{rec: rec, consumed: make(chan struct{})}

	a := newTestApp()
	a.SetConsumers(consumer)
	a.SetStoppers(
		StopFunc(func(context.Context) error {
			rec.calls = append(rec.calls, "jobs")
			return nil
		}),
		StopFunc(func(context.Context) error {
			rec.calls = append(rec.calls, "producer")
			return nil
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	<-consumer.consumed

	require.NoError(t, a.Stop())
	assert.Equal(t, []string{"consumer", "jobs", "producer"}, rec.calls)
}

type failingStarter struct{}

func (failingStarter) Start(context.Context) error { return assert.AnError }

func TestApplication_StartFails(t *testing.T) {
	a := newTestApp()
	a.SetStarters(failingStarter{})

	assert.ErrorIs(t, a.Start(context.Background()), assert.AnError)
}

type ctxStarter struct {
	ctx context.Context
}

func (s *ctxStarter) Start(ctx context.Context) error {
	s.ctx = ctx
	return nil
}

func TestApplication_StarterContextOutlivesStart(t *testing.T) {
	starter := &ctxStarter{}
	a := newTestApp()
	a.SetStarters(starter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, a.Start(ctx))
	t.Cleanup(func() { _ = a.Stop() })

	require.NotNil(t, starter.ctx)
	assert.NoError(t, starter.ctx.Err())

	cancel()
	assert.ErrorIs(t, starter.ctx.Err(), context.Canceled)
}
