package server

import (
	"partscatalog/internal/config"
	mw "partscatalog/internal/middleware"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Health.RegisterRoutes(e)
	h.Products.RegisterRoutes(e)
	h.Brands.RegisterRoutes(e)
	h.Manufacturers.RegisterRoutes(e)
	if h.Orders != nil {
		h.Orders.RegisterRoutes(e)
	}
	if h.Payments != nil {
		h.Payments.RegisterRoutes(e)
	}

	//管理API（作成/更新/削除）。認証が設定されていれば JWT + ADMIN
	var admin []echo.MiddlewareFunc
	if cfg.AuthEnabled() {
		admin = append(admin, mw.AuthJWT(cfg.JWTSecret), mw.AdminRoleGuard())
		if h.Auth != nil {
			h.Auth.RegisterRoutes(e)
		}
	}

	h.Products.RegisterAdminRoutes(e, admin...)
	h.Brands.RegisterAdminRoutes(e, admin...)
	h.Manufacturers.RegisterAdminRoutes(e, admin...)
	if h.Orders != nil {
		h.Orders.RegisterAdminRoutes(e, admin...)
	}
}
