package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beerstock/internal/server"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type panicRoutes struct{}

func (panicRoutes) RegisterRoutes(e *echo.Echo) {
	e.GET("/panic", func(c echo.Context) error { panic("boom") })
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
}

func TestNew_SetsRequestID(t *testing.T) {
	e := server.New(zaptest.NewLogger(t), panicRoutes{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestNew_RecoversFromPanic(t *testing.T) {
	e := server.New(zaptest.NewLogger(t), panicRoutes{})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	e := server.New(zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- server.Start(ctx, e, "127.0.0.1:0", zaptest.NewLogger(t)) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
