package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"amado/internal/domain"
	"amado/internal/upstream"
	"amado/pkg/validator"
)

type AddressServiceImpl struct {
	cep    *upstream.CEPClient
	logger *zap.Logger
}

func NewAddressService(cep *upstream.CEPClient, logger *zap.Logger) *AddressServiceImpl {
	return &AddressServiceImpl{
		cep:    cep,
		logger: logger,
	}
}

func (s *AddressServiceImpl) LookupCEP(ctx context.Context, cep string) (*domain.CEPLookup, error) {
	digits := validator.OnlyDigits(cep)
	if !validator.ValidateCEP(digits) {
		return nil, errors.New("CEP inválido: informe 8 dígitos")
	}
	return s.cep.Lookup(ctx, digits)
}
