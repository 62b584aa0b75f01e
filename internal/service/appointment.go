package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"amado/internal/domain"
	"amado/internal/upstream"
)

type AppointmentServiceImpl struct {
	upstream *upstream.Client
	logger   *zap.Logger
}

func NewAppointmentService(client *upstream.Client, logger *zap.Logger) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		upstream: client,
		logger:   logger,
	}
}

func (s *AppointmentServiceImpl) List(ctx context.Context, token string, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	return s.upstream.ListAppointments(ctx, token, filter)
}

func (s *AppointmentServiceImpl) CancelByClient(ctx context.Context, token string, id int64) error {
	if err := s.upstream.CancelByClient(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("agendamento cancelado pelo cliente", zap.Int64("id_agendamento", id))
	return nil
}

func (s *AppointmentServiceImpl) ConfirmByAttendant(ctx context.Context, token string, id int64, dto domain.ConfirmAppointmentDTO) error {
	if err := s.upstream.ConfirmByAttendant(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("agendamento confirmado pelo atendente", zap.Int64("id_agendamento", id))
	return nil
}

func (s *AppointmentServiceImpl) RefuseByAttendant(ctx context.Context, token string, id int64, dto domain.RefuseAppointmentDTO) error {
	if dto.Reason == "" {
		return errors.New("o motivo da recusa é obrigatório")
	}
	if err := s.upstream.RefuseByAttendant(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("agendamento recusado pelo atendente", zap.Int64("id_agendamento", id))
	return nil
}

func (s *AppointmentServiceImpl) CancelByAdmin(ctx context.Context, token string, id int64, dto domain.AdminCancelDTO) error {
	if dto.Reason == "" {
		return errors.New("o motivo do cancelamento é obrigatório")
	}
	if err := s.upstream.CancelByAdmin(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("agendamento cancelado pela administração", zap.Int64("id_agendamento", id))
	return nil
}

func (s *AppointmentServiceImpl) MarkCompleted(ctx context.Context, token string, id int64) error {
	return s.upstream.MarkCompleted(ctx, token, id)
}

func (s *AppointmentServiceImpl) UpdateNotes(ctx context.Context, token string, id int64, dto domain.UpdateNotesDTO) error {
	return s.upstream.UpdateNotes(ctx, token, id, dto)
}

func (s *AppointmentServiceImpl) CreateReview(ctx context.Context, token string, reviewerID int64, dto domain.CreateReviewDTO) error {
	if dto.Rating < 1 || dto.Rating > 5 {
		return errors.New("a nota deve estar entre 1 e 5")
	}
	dto.ReviewerID = reviewerID

	if err := s.upstream.CreateReview(ctx, token, dto); err != nil {
		return err
	}
	s.logger.Info("avaliação registrada",
		zap.Int64("id_agendamento", dto.AppointmentID),
		zap.Int("nota", dto.Rating),
	)
	return nil
}
