package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/raywall/items-handler/pkg/config"
	"github.com/raywall/items-handler/pkg/dispatcher"
	"github.com/raywall/items-handler/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_CRUD(t *testing.T) {
	h := NewRouter("/items", dispatcher.New(store.NewMemoryStore()))

	rec := do(t, h, http.MethodPost, "/items", `{"id":"a","info":"x","tags":["t"]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Item created"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(HeaderCorrelationID))
	assert.NotEmpty(t, rec.Header().Get(HeaderLatency))

	rec = do(t, h, http.MethodPut, "/items", `{"id":"a","info":"y"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/items?id=a", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"a","info":"y","tags":["t"]}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/items?id=a", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Item deleted"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/items?id=a", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestRouter_InvalidMethod(t *testing.T) {
	h := NewRouter("/items", dispatcher.New(store.NewMemoryStore()))

	rec := do(t, h, http.MethodPatch, "/items?id=a", `{"id":"a"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid HTTP Method"}`, rec.Body.String())
}

func TestRouter_HealthAndUnknownRoute(t *testing.T) {
	h := NewRouter("/items", dispatcher.New(store.NewMemoryStore()))

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/other", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestObservabilityMiddleware_KeepsCorrelationID(t *testing.T) {
	h := NewRouter("/items", dispatcher.New(store.NewMemoryStore()))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderCorrelationID, "corr-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "corr-1", rec.Header().Get(HeaderCorrelationID))
}

func TestStartHTTPServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := config.ServiceConf{Port: 0, Route: "/items", ReadTimeout: time.Second, WriteTimeout: time.Second}

	done := make(chan error, 1)
	go func() {
		done <- StartHTTPServer(ctx, cfg, dispatcher.New(store.NewMemoryStore()))
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não encerrou após o cancelamento")
	}
}
