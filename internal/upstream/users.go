package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"amado/internal/domain"
)

func (c *Client) ClientProfile(ctx context.Context, token string, id int64) (*domain.ClientProfile, error) {
	var profile domain.ClientProfile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d/perfil", id), nil, token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateClientProfile(ctx context.Context, token string, id int64, dto domain.UpdateUserDTO) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d/perfil", id), nil, token, dto, nil)
}

// ChangePassword troca a senha do próprio usuário mediante a senha atual.
func (c *Client) ChangePassword(ctx context.Context, token string, userID int64, dto domain.PasswordUpdateDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/usuarios/%d/alterar-senha", userID), nil, token, dto, nil)
}

type userListResponse struct {
	Users []domain.User `json:"usuarios"`
}

// ListUsers lista contas para o painel administrativo, com filtros de
// tipo, situação e busca textual.
func (c *Client) ListUsers(ctx context.Context, token string, filter domain.UserFilter) ([]domain.User, error) {
	query := url.Values{}
	if filter.Type != nil {
		query.Set("tipo", string(*filter.Type))
	}
	if filter.Status != nil {
		query.Set("situacao", string(*filter.Status))
	}
	if filter.Search != "" {
		query.Set("busca", filter.Search)
	}

	var resp userListResponse
	if err := c.do(ctx, http.MethodGet, "/usuarios", query, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (c *Client) GetUser(ctx context.Context, token string, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/usuarios/%d", id), nil, token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangeUserStatus bloqueia ou reativa uma conta (ação de admin).
func (c *Client) ChangeUserStatus(ctx context.Context, token string, id int64, dto domain.ChangeUserStatusDTO) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/usuarios/%d/alterar-status", id), nil, token, dto, nil)
}
