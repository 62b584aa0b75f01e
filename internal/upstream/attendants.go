package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"amado/internal/domain"
)

type attendantListResponse struct {
	Attendants []domain.Attendant `json:"atendentes"`
}

// ListAttendants busca a vitrine pública de atendentes, com filtros de
// área, situação e busca textual.
func (c *Client) ListAttendants(ctx context.Context, filter domain.AttendantFilter) ([]domain.Attendant, error) {
	query := url.Values{}
	if filter.Status != "" {
		query.Set("situacao", filter.Status)
	}
	if filter.Area != "" {
		query.Set("area_atuacao", filter.Area)
	}
	if filter.Search != "" {
		query.Set("busca", filter.Search)
	}
	if filter.Limit > 0 {
		query.Set("limite", strconv.Itoa(filter.Limit))
	}

	var resp attendantListResponse
	if err := c.do(ctx, http.MethodGet, "/atendentes", query, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Attendants, nil
}

// FeaturedAttendants busca os atendentes em destaque da página inicial.
func (c *Client) FeaturedAttendants(ctx context.Context, limit int) ([]domain.Attendant, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limite", strconv.Itoa(limit))
	}

	var resp attendantListResponse
	if err := c.do(ctx, http.MethodGet, "/atendentes/destaque", query, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Attendants, nil
}

func (c *Client) AttendantProfile(ctx context.Context, token string, id int64) (*domain.AttendantProfile, error) {
	var profile domain.AttendantProfile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/atendentes/%d/perfil", id), nil, token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateAttendantProfile(ctx context.Context, token string, id int64, dto domain.UpdateAttendantProfileDTO) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/atendentes/%d/perfil", id), nil, token, dto, nil)
}

// ApproveAttendant aprova um cadastro pendente (ação de admin).
func (c *Client) ApproveAttendant(ctx context.Context, token string, id int64, dto domain.ModerateAttendantDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/atendentes/%d/aprovar", id), nil, token, dto, nil)
}

// BlockAttendant bloqueia um atendente com o motivo informado (ação de admin).
func (c *Client) BlockAttendant(ctx context.Context, token string, id int64, dto domain.ModerateAttendantDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/atendentes/%d/bloquear", id), nil, token, dto, nil)
}

func (c *Client) AttendantReviews(ctx context.Context, id int64) (*domain.ReviewSummary, error) {
	var summary domain.ReviewSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/atendentes/%d/avaliacoes", id), nil, "", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

type appointmentListResponse struct {
	Appointments []domain.Appointment `json:"agendamentos"`
}

// AttendantAppointments lista a agenda do próprio atendente, com filtro
// opcional de status.
func (c *Client) AttendantAppointments(ctx context.Context, token string, id int64, status string) ([]domain.Appointment, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var resp appointmentListResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/atendentes/%d/agendamentos", id), query, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

type availabilityResponse struct {
	Slots []string `json:"horarios_disponiveis"`
}

// Availability consulta os horários livres de um atendente para uma data
// e duração. É a fonte de dados da sessão de agendamento.
func (c *Client) Availability(ctx context.Context, attendantID int64, date string, durationMin int) ([]string, error) {
	query := url.Values{}
	query.Set("data", date)
	query.Set("duracao", strconv.Itoa(durationMin))

	var resp availabilityResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/atendentes/%d/disponibilidade", attendantID), query, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Slots, nil
}
