package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"amado/internal/booking"
	"amado/internal/domain"
	"amado/internal/upstream"
)

// ErrSessionNotFound indica uma sessão inexistente ou já expirada; o shell
// deve reabrir o modal.
var ErrSessionNotFound = errors.New("sessão de agendamento não encontrada ou expirada")

const defaultDurationMin = 60

type BookingServiceImpl struct {
	upstream *upstream.Client
	registry *booking.Registry
	logger   *zap.Logger
}

func NewBookingService(client *upstream.Client, registry *booking.Registry, logger *zap.Logger) *BookingServiceImpl {
	return &BookingServiceImpl{
		upstream: client,
		registry: registry,
		logger:   logger,
	}
}

// Open cria a sessão do modal. Quando o shell não informa a duração (o
// card da vitrine já a traz), o perfil do atendente é consultado.
func (s *BookingServiceImpl) Open(ctx context.Context, token string, attendantID int64, durationMin int) (booking.SessionView, error) {
	if durationMin <= 0 {
		profile, err := s.upstream.AttendantProfile(ctx, token, attendantID)
		if err != nil {
			return booking.SessionView{}, err
		}
		durationMin = profile.Details.DefaultDurationMin
		if durationMin <= 0 {
			durationMin = defaultDurationMin
		}
	}

	session := s.registry.Open(attendantID, durationMin)
	return session.View(), nil
}

func (s *BookingServiceImpl) View(sessionID string) (booking.SessionView, error) {
	session, ok := s.registry.Get(sessionID)
	if !ok {
		return booking.SessionView{}, ErrSessionNotFound
	}
	return session.View(), nil
}

func (s *BookingServiceImpl) NavigateMonth(sessionID string, delta int) (booking.SessionView, error) {
	session, ok := s.registry.Get(sessionID)
	if !ok {
		return booking.SessionView{}, ErrSessionNotFound
	}

	session.NavigateMonth(delta)
	return session.View(), nil
}

// SelectDate aplica a escolha de data. Datas passadas são ignoradas como
// as células desabilitadas do grid: a visão volta inalterada, sem erro.
func (s *BookingServiceImpl) SelectDate(sessionID string, date string) (booking.SessionView, error) {
	session, ok := s.registry.Get(sessionID)
	if !ok {
		return booking.SessionView{}, ErrSessionNotFound
	}

	parsed, err := booking.ParseDate(date)
	if err != nil {
		return booking.SessionView{}, err
	}

	session.SelectDate(parsed)
	return session.View(), nil
}

func (s *BookingServiceImpl) SelectSlot(sessionID string, slot string) (booking.SessionView, error) {
	session, ok := s.registry.Get(sessionID)
	if !ok {
		return booking.SessionView{}, ErrSessionNotFound
	}

	session.SelectSlot(slot)
	return session.View(), nil
}

func (s *BookingServiceImpl) RefreshSlots(sessionID string) (booking.SessionView, error) {
	session, ok := s.registry.Get(sessionID)
	if !ok {
		return booking.SessionView{}, ErrSessionNotFound
	}

	session.RefreshSlots()
	return session.View(), nil
}

// Confirm monta a solicitação a partir da sessão e a registra na API. A
// sessão é descartada só com a criação bem-sucedida, preservando as
// escolhas do usuário quando a API recusa.
func (s *BookingServiceImpl) Confirm(ctx context.Context, token string, sessionID string, clientID int64, dto domain.ConfirmBookingDTO) (*domain.Appointment, error) {
	session, ok := s.registry.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	start, durationMin, err := session.Fragment()
	if err != nil {
		return nil, err
	}

	created, err := s.upstream.CreateAppointment(ctx, token, domain.CreateAppointmentDTO{
		ClientID:      clientID,
		AttendantID:   session.AttendantID,
		StartDateTime: start,
		DurationMin:   durationMin,
		Modality:      dto.Modality,
		Subject:       dto.Subject,
	})
	if err != nil {
		return nil, err
	}

	s.registry.Close(sessionID)
	s.logger.Info("agendamento solicitado",
		zap.Int64("id_cliente", clientID),
		zap.Int64("id_atendente", session.AttendantID),
		zap.String("data_hora_inicio", start),
	)
	return created, nil
}

func (s *BookingServiceImpl) Close(sessionID string) {
	s.registry.Close(sessionID)
}
