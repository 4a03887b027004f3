package handler

import (
	"net/http"

	"partscatalog/internal/domain/model"
	"partscatalog/internal/usecase"

	"github.com/labstack/echo/v4"
)

type BrandHandler struct {
	uc *usecase.BrandUsecase
}

func NewBrandHandler(uc *usecase.BrandUsecase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

func (h *BrandHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/brands", h.list)
	e.GET("/brands/:id", h.detail)
}

// 作成/更新/削除は単数形の /brand（既存フロントと同じパス）
func (h *BrandHandler) RegisterAdminRoutes(e *echo.Echo, mws ...echo.MiddlewareFunc) {
	e.POST("/brand", h.create, mws...)
	e.PUT("/brand/:id", h.update, mws...)
	e.DELETE("/brand/:id", h.delete, mws...)
}

func (h *BrandHandler) list(c echo.Context) error {
	brands, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) detail(c echo.Context) error {
	b, err := h.uc.GetBrand(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) create(c echo.Context) error {
	var req model.BrandInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	b, err := h.uc.CreateBrand(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BrandHandler) update(c echo.Context) error {
	var req model.BrandInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	b, err := h.uc.UpdateBrand(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BrandHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteBrand(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
