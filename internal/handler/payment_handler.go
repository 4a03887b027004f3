package handler

import (
	"net/http"

	"partscatalog/internal/domain/model"
	"partscatalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments/create-order", h.createOrder)
	e.POST("/payments/verify", h.verify)
}

func (h *PaymentHandler) createOrder(c echo.Context) error {
	var req model.PaymentOrderInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	o, err := h.uc.CreatePaymentOrder(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *PaymentHandler) verify(c echo.Context) error {
	var req model.PaymentVerification
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.VerifyPayment(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
