package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"partscatalog/internal/domain/model"

	"github.com/shopspring/decimal"
)

// ProductFilter は GET /products のクエリ。ゼロ値の項目は送らない。
type ProductFilter struct {
	Q            string
	Brand        string
	Manufacturer string
	Category     string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	Sort         string // price-asc / price-desc / rating-desc
}

func (f ProductFilter) values() url.Values {
	v := url.Values{}
	if f.Q != "" {
		v.Set("q", f.Q)
	}
	if f.Brand != "" {
		v.Set("brand", f.Brand)
	}
	if f.Manufacturer != "" {
		v.Set("manufacturer", f.Manufacturer)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		v.Set("minPrice", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		v.Set("maxPrice", f.MaxPrice.String())
	}
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	return v
}

func (c *Client) ListProducts(ctx context.Context, f ProductFilter) (model.ProductList, error) {
	var out model.ProductList
	if err := c.do(ctx, http.MethodGet, "/products", f.values(), nil, &out); err != nil {
		return model.ProductList{}, err
	}
	if out.Items == nil {
		out.Items = []model.Product{}
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, http.MethodGet, "/products/"+escape(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, http.MethodPost, "/product", nil, in, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, http.MethodPut, "/product/"+escape(id), nil, in, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/product/"+escape(id), nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	out := []string{}
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
