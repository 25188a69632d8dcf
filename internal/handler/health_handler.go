package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.health)
}

func (h *HealthHandler) health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn("health check failed", zap.Error(err))
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
