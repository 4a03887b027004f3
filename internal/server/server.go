package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"partscatalog/internal/config"
	"partscatalog/internal/handler"
	mw "partscatalog/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers はルーティングに載せるハンドラ一式。
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler // nil なら /auth/login なし
	Products      *handler.ProductHandler
	Brands        *handler.BrandHandler
	Manufacturers *handler.ManufacturerHandler
	Orders        *handler.OrderHandler   // nil なら /orders なし
	Payments      *handler.PaymentHandler // nil なら /payments/* なし（Razorpay 未設定）
}

// New は echo を組み立てる（Start とテストの両方から使う）。
func New(cfg config.Config, logger *slog.Logger, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	RegisterRoutes(e, cfg, h)
	return e
}

// Start は ctx が終わるまでサーバーを動かし、終わったら graceful shutdown する。
func Start(ctx context.Context, addr string, e *echo.Echo) error {
	errCh := make(chan error, 1)
	go func() {
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
