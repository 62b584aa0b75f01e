package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"amado/internal/domain"
)

// ListAppointments lista os agendamentos visíveis ao usuário autenticado;
// com AdminView o painel enxerga todos, com filtros extras.
func (c *Client) ListAppointments(ctx context.Context, token string, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	query := url.Values{}
	if filter.AdminView {
		query.Set("admin_view", "true")
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Area != "" {
		query.Set("area_atuacao", filter.Area)
	}
	if filter.SelectedDate != "" {
		query.Set("data", filter.SelectedDate)
	}
	if filter.Search != "" {
		query.Set("busca", filter.Search)
	}

	var resp appointmentListResponse
	if err := c.do(ctx, http.MethodGet, "/agendamentos", query, token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Appointments, nil
}

type createAppointmentResponse struct {
	Message     string              `json:"message"`
	Appointment *domain.Appointment `json:"agendamento_criado"`
}

// CreateAppointment registra a solicitação montada pelo fluxo de
// agendamento e devolve o agendamento criado.
func (c *Client) CreateAppointment(ctx context.Context, token string, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	var resp createAppointmentResponse
	if err := c.do(ctx, http.MethodPost, "/agendamentos", nil, token, dto, &resp); err != nil {
		return nil, err
	}
	return resp.Appointment, nil
}

func (c *Client) CancelByClient(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/agendamentos/%d/cancelar/cliente", id), nil, token, nil, nil)
}

func (c *Client) ConfirmByAttendant(ctx context.Context, token string, id int64, dto domain.ConfirmAppointmentDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/agendamentos/%d/confirmar/atendente", id), nil, token, dto, nil)
}

func (c *Client) RefuseByAttendant(ctx context.Context, token string, id int64, dto domain.RefuseAppointmentDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/agendamentos/%d/recusar/atendente", id), nil, token, dto, nil)
}

func (c *Client) CancelByAdmin(ctx context.Context, token string, id int64, dto domain.AdminCancelDTO) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/agendamentos/%d/cancelar/admin", id), nil, token, dto, nil)
}

// MarkCompleted marca um agendamento confirmado como realizado.
func (c *Client) MarkCompleted(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/agendamentos/%d/marcar-realizado", id), nil, token, nil, nil)
}

func (c *Client) UpdateNotes(ctx context.Context, token string, id int64, dto domain.UpdateNotesDTO) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/agendamentos/%d/observacoes", id), nil, token, dto, nil)
}

// CreateReview registra a avaliação de um atendimento realizado.
func (c *Client) CreateReview(ctx context.Context, token string, dto domain.CreateReviewDTO) error {
	return c.do(ctx, http.MethodPost, "/agendamentos/avaliacoes", nil, token, dto, nil)
}
