package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"amado/config"
	"amado/internal/domain"
)

// ErrCEPNotFound indica um CEP bem formado que não existe na base do ViaCEP.
var ErrCEPNotFound = errors.New("CEP não encontrado")

// CEPClient consulta o serviço público ViaCEP para preencher endereço no
// cadastro. É um serviço externo à API do marketplace, com cliente próprio.
type CEPClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewCEPClient(cfg config.ViaCEPConfig, logger *zap.Logger) *CEPClient {
	return &CEPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

type viaCEPResponse struct {
	domain.CEPLookup
	// O ViaCEP responde 200 com {"erro": true} para CEP inexistente.
	Erro bool `json:"erro"`
}

func (c *CEPClient) Lookup(ctx context.Context, cep string) (*domain.CEPLookup, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("falha na consulta ao ViaCEP", zap.String("cep", cep), zap.Error(err))
		return nil, fmt.Errorf("falha na consulta de CEP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consulta de CEP retornou status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do ViaCEP: %w", err)
	}

	var body viaCEPResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("formato de resposta inválido do ViaCEP: %w", err)
	}
	if body.Erro {
		return nil, ErrCEPNotFound
	}

	return &body.CEPLookup, nil
}
