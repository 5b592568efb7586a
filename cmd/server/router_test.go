package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet-dashboard/internal/detail"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/internal/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, authRequired bool) *app {
	t.Helper()
	log := logger.Discard()

	fleet := providers.NewFleet(time.Millisecond, log)
	t.Cleanup(fleet.Dispose)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	fleet.Activate(ctx)
	require.NoError(t, fleet.Wait(ctx))

	return &app{
		store:        session.NewStore(session.NewMemoryStorage(), log),
		tokens:       session.NewTokens("test-secret", time.Hour),
		fleet:        fleet,
		assembler:    detail.NewAssembler(fleet, nil, 0),
		hub:          websocket.NewHub(log),
		authRequired: authRequired,
		log:          log,
	}
}

func do(t *testing.T, h http.Handler, method, target, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterOpen(t *testing.T) {
	h := newTestApp(t, false).router()

	for _, target := range []string{
		"/health",
		"/api/auth/status",
		"/api/trucks",
		"/api/trucks/T-101",
		"/api/drivers?search=chicago",
		"/api/deliveries/DEL-1092",
		"/api/map/locations",
		"/api/map/locations.geojson",
		"/api/dashboard",
		"/api/analytics?range=quarter",
		"/dashboard/analytics",
		"/login",
	} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, target, "").Code)
		})
	}

	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestRouterAuthRequired(t *testing.T) {
	a := newTestApp(t, true)
	h := a.router()

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodGet, "/api/trucks", "").Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/auth/status", "").Code)

	rec := do(t, h, http.MethodGet, "/dashboard/trucks", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	token, err := a.tokens.Issue(models.Session{Email: "ops@fleet.io", Name: "Ops"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/trucks", token).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/dashboard/trucks", token).Code)
}

func TestRouterUnknownPaths(t *testing.T) {
	h := newTestApp(t, false).router()

	for _, target := range []string{"/settings", "/foo/bar", "/dashboard/nope"} {
		t.Run(target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, target, "")
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		})
	}

	for _, target := range []string{"/api/nope", "/api/trucks/T-101/extra"} {
		t.Run(target, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, target, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"Not found"}`, rec.Body.String())
		})
	}

	rec := do(t, h, http.MethodPost, "/settings", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}
