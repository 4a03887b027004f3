package apiclient

import (
	"context"
	"net/http"

	"partscatalog/internal/domain/model"
)

func (c *Client) ListManufacturers(ctx context.Context) ([]model.Manufacturer, error) {
	out := []model.Manufacturer{}
	if err := c.do(ctx, http.MethodGet, "/manufacturers", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetManufacturer(ctx context.Context, id string) (model.Manufacturer, error) {
	var out model.Manufacturer
	err := c.do(ctx, http.MethodGet, "/manufacturers/"+escape(id), nil, nil, &out)
	return out, err
}

func (c *Client) CreateManufacturer(ctx context.Context, in model.ManufacturerInput) (model.Manufacturer, error) {
	var out model.Manufacturer
	err := c.do(ctx, http.MethodPost, "/manufacturers", nil, in, &out)
	return out, err
}

func (c *Client) UpdateManufacturer(ctx context.Context, id string, in model.ManufacturerInput) (model.Manufacturer, error) {
	var out model.Manufacturer
	err := c.do(ctx, http.MethodPut, "/manufacturers/"+escape(id), nil, in, &out)
	return out, err
}

func (c *Client) DeleteManufacturer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/manufacturers/"+escape(id), nil, nil, nil)
}
