package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"beerstock/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_OK(t *testing.T) {
	e := echo.New()
	handler.NewHealthHandler(pingerFunc(func(context.Context) error { return nil }), zaptest.NewLogger(t)).RegisterRoutes(e)

	rec := doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthHandler_DBDown(t *testing.T) {
	e := echo.New()
	handler.NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("refused") }), zaptest.NewLogger(t)).RegisterRoutes(e)

	rec := doRequest(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
