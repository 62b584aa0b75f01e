package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amado/internal/domain"
)

// @Summary Cadastro de novo usuário
// @Description Registra um cliente ou atendente; atendentes entram como PENDENTE_APROVACAO
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} domain.RegisterResult "Cadastro registrado"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 409 {object} errorResponseBody "E-mail ou CPF já cadastrado"
// @Router /auth/registrar [post]
func (h *Handler) register(c *gin.Context) {
	var input domain.RegisterRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	result, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	createdResponse(c, result)
}

// @Summary Entrar na plataforma
// @Description Autentica o usuário e devolve o token com os dados básicos
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Credenciais"
// @Success 200 {object} domain.LoginResult "Token e usuário"
// @Failure 400 {object} errorResponseBody "Erro de validação"
// @Failure 401 {object} errorResponseBody "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	result, err := h.services.Auth.Login(c.Request.Context(), input)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, result)
}
