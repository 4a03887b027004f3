package handler

import (
	"net/http"

	"partscatalog/internal/domain/model"
	"partscatalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ManufacturerHandler struct {
	uc *usecase.ManufacturerUsecase
}

func NewManufacturerHandler(uc *usecase.ManufacturerUsecase) *ManufacturerHandler {
	return &ManufacturerHandler{uc: uc}
}

func (h *ManufacturerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/manufacturers", h.list)
	e.GET("/manufacturers/:id", h.detail)
}

func (h *ManufacturerHandler) RegisterAdminRoutes(e *echo.Echo, mws ...echo.MiddlewareFunc) {
	e.POST("/manufacturers", h.create, mws...)
	e.PUT("/manufacturers/:id", h.update, mws...)
	e.DELETE("/manufacturers/:id", h.delete, mws...)
}

func (h *ManufacturerHandler) list(c echo.Context) error {
	mans, err := h.uc.ListManufacturers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, mans)
}

func (h *ManufacturerHandler) detail(c echo.Context) error {
	m, err := h.uc.GetManufacturer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ManufacturerHandler) create(c echo.Context) error {
	var req model.ManufacturerInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	m, err := h.uc.CreateManufacturer(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *ManufacturerHandler) update(c echo.Context) error {
	var req model.ManufacturerInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	m, err := h.uc.UpdateManufacturer(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ManufacturerHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteManufacturer(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
