package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"amado/internal/domain"
	"amado/internal/upstream"
)

type AttendantServiceImpl struct {
	upstream *upstream.Client
	logger   *zap.Logger
}

func NewAttendantService(client *upstream.Client, logger *zap.Logger) *AttendantServiceImpl {
	return &AttendantServiceImpl{
		upstream: client,
		logger:   logger,
	}
}

func (s *AttendantServiceImpl) List(ctx context.Context, filter domain.AttendantFilter) ([]domain.Attendant, error) {
	return s.upstream.ListAttendants(ctx, filter)
}

func (s *AttendantServiceImpl) Featured(ctx context.Context, limit int) ([]domain.Attendant, error) {
	if limit <= 0 || limit > 12 {
		limit = 6
	}
	return s.upstream.FeaturedAttendants(ctx, limit)
}

func (s *AttendantServiceImpl) Profile(ctx context.Context, token string, id int64) (*domain.AttendantProfile, error) {
	return s.upstream.AttendantProfile(ctx, token, id)
}

func (s *AttendantServiceImpl) UpdateProfile(ctx context.Context, token string, id int64, dto domain.UpdateAttendantProfileDTO) error {
	if dto.User == nil && dto.Details == nil {
		return errors.New("nenhum campo para atualizar")
	}
	return s.upstream.UpdateAttendantProfile(ctx, token, id, dto)
}

func (s *AttendantServiceImpl) Approve(ctx context.Context, token string, id int64, dto domain.ModerateAttendantDTO) error {
	if err := s.upstream.ApproveAttendant(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("atendente aprovado", zap.Int64("id_atendente", id))
	return nil
}

func (s *AttendantServiceImpl) Block(ctx context.Context, token string, id int64, dto domain.ModerateAttendantDTO) error {
	if dto.Reason == "" {
		return errors.New("o motivo do bloqueio é obrigatório")
	}
	if err := s.upstream.BlockAttendant(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("atendente bloqueado", zap.Int64("id_atendente", id))
	return nil
}

func (s *AttendantServiceImpl) Reviews(ctx context.Context, id int64) (*domain.ReviewSummary, error) {
	return s.upstream.AttendantReviews(ctx, id)
}

func (s *AttendantServiceImpl) Appointments(ctx context.Context, token string, id int64, status string) ([]domain.Appointment, error) {
	return s.upstream.AttendantAppointments(ctx, token, id, status)
}
