package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"amado/config"
	"amado/internal/domain"
	"amado/internal/upstream"
	"amado/pkg/validator"
)

// tokenClaims espelha o token emitido pela API do marketplace; a chave de
// assinatura é compartilhada para que o gateway valide sem chamada extra.
type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64           `json:"id_usuario"`
	Type   domain.UserType `json:"tipo_usuario"`
}

type AuthServiceImpl struct {
	upstream  *upstream.Client
	jwtConfig config.JWTConfig
	logger    *zap.Logger
}

func NewAuthService(client *upstream.Client, jwtConfig config.JWTConfig, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		upstream:  client,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResult, error) {
	result, err := s.upstream.Login(ctx, dto)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login realizado",
		zap.Int64("id_usuario", result.User.ID),
		zap.String("tipo_usuario", string(result.User.Type)),
	)
	return result, nil
}

// Register valida o cadastro no gateway antes de repassar à API, para
// devolver erros de formulário sem ida ao servidor de negócio.
func (s *AuthServiceImpl) Register(ctx context.Context, dto domain.RegisterRequest) (*domain.RegisterResult, error) {
	if !validator.ValidateCPF(dto.CPF) {
		return nil, errors.New("CPF inválido")
	}
	if !validator.ValidatePassword(dto.Password) {
		return nil, errors.New("a senha deve ter ao menos 8 caracteres, com maiúscula, minúscula e número")
	}
	if dto.MainPhone != "" && !validator.ValidatePhone(dto.MainPhone) {
		return nil, errors.New("telefone inválido")
	}
	if dto.Address != nil && !validator.ValidateCEP(dto.Address.CEP) {
		return nil, errors.New("CEP inválido")
	}
	if dto.Type == domain.UserTypeAttendant && dto.AttendantDetails == nil {
		return nil, errors.New("cadastro de atendente exige os dados profissionais")
	}

	result, err := s.upstream.Register(ctx, dto)
	if err != nil {
		return nil, err
	}

	s.logger.Info("cadastro enviado",
		zap.Int64("id_usuario", result.UserID),
		zap.String("tipo_usuario", string(dto.Type)),
	)
	return result, nil
}

func (s *AuthServiceImpl) ParseToken(tokenString string) (int64, domain.UserType, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SigningKey), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("erro ao validar token: %w", err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("token inválido")
	}

	return claims.UserID, claims.Type, nil
}
