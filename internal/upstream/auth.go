package upstream

import (
	"context"
	"net/http"

	"amado/internal/domain"
)

func (c *Client) Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResult, error) {
	var result domain.LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, "", dto, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Register(ctx context.Context, dto domain.RegisterRequest) (*domain.RegisterResult, error) {
	var result domain.RegisterResult
	if err := c.do(ctx, http.MethodPost, "/auth/registrar", nil, "", dto, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
