package handler

import (
	"net/http"

	"partscatalog/internal/domain/model"
	"partscatalog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /products の公開APIと /product の管理API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 公開ルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/:id", h.detail)
	e.GET("/categories", h.categories)
}

// 管理ルートを登録（mws は認証ミドルウェア）
func (h *ProductHandler) RegisterAdminRoutes(e *echo.Echo, mws ...echo.MiddlewareFunc) {
	e.POST("/product", h.create, mws...)
	e.PUT("/product/:id", h.update, mws...)
	e.DELETE("/product/:id", h.delete, mws...)
}

func (h *ProductHandler) list(c echo.Context) error {
	minPrice, err := decimalParam(c, "minPrice")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid minPrice"})
	}
	maxPrice, err := decimalParam(c, "maxPrice")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid maxPrice"})
	}

	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Q:            c.QueryParam("q"),
		Brand:        c.QueryParam("brand"),
		Manufacturer: c.QueryParam("manufacturer"),
		Category:     c.QueryParam("category"),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Sort:         c.QueryParam("sort"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, err := h.uc.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) categories(c echo.Context) error {
	cats, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cats)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req model.ProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	var req model.ProductInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	if err := h.uc.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// 空なら nil
func decimalParam(c echo.Context, key string) (*decimal.Decimal, error) {
	v := c.QueryParam(key)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
