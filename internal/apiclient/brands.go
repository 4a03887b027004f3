package apiclient

import (
	"context"
	"net/http"

	"partscatalog/internal/domain/model"
)

func (c *Client) ListBrands(ctx context.Context) ([]model.Brand, error) {
	out := []model.Brand{}
	if err := c.do(ctx, http.MethodGet, "/brands", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBrand(ctx context.Context, id string) (model.Brand, error) {
	var out model.Brand
	err := c.do(ctx, http.MethodGet, "/brands/"+escape(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateBrand(ctx context.Context, in model.BrandInput) (model.Brand, error) {
	var out model.Brand
	err := c.do(ctx, http.MethodPost, "/brand", nil, in, &out)
	return out, err
}

func (c *Client) UpdateBrand(ctx context.Context, id string, in model.BrandInput) (model.Brand, error) {
	var out model.Brand
	err := c.do(ctx, http.MethodPut, "/brand/"+escape(id), nil, in, &out)
	return out, err
}

func (c *Client) DeleteBrand(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/brand/"+escape(id), nil, nil, nil)
}
