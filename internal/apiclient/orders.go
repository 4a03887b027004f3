package apiclient

import (
	"context"
	"net/http"

	"partscatalog/internal/domain/model"
)

func (c *Client) PlaceOrder(ctx context.Context, in model.OrderInput) (model.OrderView, error) {
	var out model.OrderCreated
	if err := c.do(ctx, http.MethodPost, "/orders", nil, in, &out); err != nil {
		return model.OrderView{}, err
	}
	return out.Order, nil
}

// 管理者トークンが要る
func (c *Client) ListOrders(ctx context.Context) ([]model.OrderView, error) {
	out := []model.OrderView{}
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
