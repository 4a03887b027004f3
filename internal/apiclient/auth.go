package apiclient

import (
	"context"
	"net/http"

	"partscatalog/internal/domain/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login は管理者トークンを取得し、以降のリクエストに付ける。
func (c *Client) Login(ctx context.Context, email, password string) (model.AdminToken, error) {
	var out model.AdminToken
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &out); err != nil {
		return model.AdminToken{}, err
	}
	c.SetToken(out.AccessToken)
	return out, nil
}
