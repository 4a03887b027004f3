package handler

import (
	"net/http"

	"partscatalog/internal/domain/model"
	"partscatalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 注文は誰でもできる
func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
}

func (h *OrderHandler) RegisterAdminRoutes(e *echo.Echo, mws ...echo.MiddlewareFunc) {
	e.GET("/orders", h.list, mws...)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req model.OrderInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	o, err := h.uc.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, model.OrderCreated{Order: o})
}

func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}
