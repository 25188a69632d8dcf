package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

// New は共通 middleware を設定した echo を返す
func New(log *zap.Logger, registrars ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	RegisterMiddleware(e, log)
	RegisterRoutes(e, registrars...)
	return e
}

// Start は ctx がキャンセルされるまで待ち受け、その後 graceful shutdown する
func Start(ctx context.Context, e *echo.Echo, addr string, log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("shutting down http server")
	return e.Shutdown(shutdownCtx)
}
