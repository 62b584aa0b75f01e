package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"amado/internal/domain"
	"amado/internal/upstream"
	"amado/pkg/validator"
)

type UserServiceImpl struct {
	upstream *upstream.Client
	logger   *zap.Logger
}

func NewUserService(client *upstream.Client, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		upstream: client,
		logger:   logger,
	}
}

func (s *UserServiceImpl) ClientProfile(ctx context.Context, token string, id int64) (*domain.ClientProfile, error) {
	return s.upstream.ClientProfile(ctx, token, id)
}

func (s *UserServiceImpl) UpdateClientProfile(ctx context.Context, token string, id int64, dto domain.UpdateUserDTO) error {
	if dto.MainPhone != nil && !validator.ValidatePhone(*dto.MainPhone) {
		return errors.New("telefone inválido")
	}
	return s.upstream.UpdateClientProfile(ctx, token, id, dto)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, token string, id int64, dto domain.PasswordUpdateDTO) error {
	if !validator.ValidatePassword(dto.NewPassword) {
		return errors.New("a nova senha deve ter ao menos 8 caracteres, com maiúscula, minúscula e número")
	}
	if dto.NewPassword == dto.CurrentPassword {
		return errors.New("a nova senha deve ser diferente da atual")
	}

	if err := s.upstream.ChangePassword(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("senha alterada", zap.Int64("id_usuario", id))
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, token string, filter domain.UserFilter) ([]domain.User, error) {
	return s.upstream.ListUsers(ctx, token, filter)
}

func (s *UserServiceImpl) GetByID(ctx context.Context, token string, id int64) (*domain.User, error) {
	return s.upstream.GetUser(ctx, token, id)
}

func (s *UserServiceImpl) ChangeStatus(ctx context.Context, token string, id int64, dto domain.ChangeUserStatusDTO) error {
	if err := s.upstream.ChangeUserStatus(ctx, token, id, dto); err != nil {
		return err
	}
	s.logger.Info("situação de conta alterada",
		zap.Int64("id_usuario", id),
		zap.String("novo_status", string(dto.NewStatus)),
	)
	return nil
}
