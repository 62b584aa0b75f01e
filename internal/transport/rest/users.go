package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amado/internal/domain"
)

// @Summary Perfil do cliente
// @Tags Clientes
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID do cliente"
// @Success 200 {object} domain.ClientProfile "Perfil completo"
// @Failure 403 {object} errorResponseBody "Perfil de outro usuário"
// @Router /clientes/{id}/perfil [get]
func (h *Handler) getClientProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	if !h.canAccessAccount(c, id) {
		forbiddenResponse(c, "só é possível consultar o próprio perfil")
		return
	}

	profile, err := h.services.User.ClientProfile(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// @Summary Atualizar perfil do cliente
// @Tags Clientes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do cliente"
// @Param input body domain.UpdateUserDTO true "Campos a atualizar"
// @Success 200 {object} messageResponseType "Perfil atualizado"
// @Router /clientes/{id}/perfil [put]
func (h *Handler) updateClientProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	if !h.canAccessAccount(c, id) {
		forbiddenResponse(c, "só é possível editar o próprio perfil")
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.User.UpdateClientProfile(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "perfil atualizado com sucesso")
}

// @Summary Alterar senha
// @Description Troca a senha do próprio usuário mediante a senha atual
// @Tags Usuários
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do usuário"
// @Param input body domain.PasswordUpdateDTO true "Senha atual e nova"
// @Success 200 {object} messageResponseType "Senha alterada"
// @Failure 401 {object} errorResponseBody "Senha atual incorreta"
// @Router /usuarios/{id}/alterar-senha [post]
func (h *Handler) changePassword(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}
	if userID != id {
		forbiddenResponse(c, "só é possível alterar a própria senha")
		return
	}

	var input domain.PasswordUpdateDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.User.ChangePassword(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "senha alterada com sucesso")
}

// @Summary Listar contas
// @Description Lista contas para o painel administrativo com filtros
// @Tags Administração
// @Security ApiKeyAuth
// @Produce json
// @Param tipo query string false "Tipo de usuário"
// @Param situacao query string false "Situação da conta"
// @Param busca query string false "Busca por nome ou e-mail"
// @Success 200 {object} successResponseBody "Lista de contas"
// @Router /usuarios [get]
func (h *Handler) getUsers(c *gin.Context) {
	var filter domain.UserFilter
	if v := c.Query("tipo"); v != "" {
		t := domain.UserType(v)
		filter.Type = &t
	}
	if v := c.Query("situacao"); v != "" {
		s := domain.UserStatus(v)
		filter.Status = &s
	}
	filter.Search = c.Query("busca")

	users, err := h.services.User.List(c.Request.Context(), bearerToken(c), filter)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, users)
}

// @Summary Detalhar conta
// @Tags Administração
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} domain.User "Dados da conta"
// @Failure 404 {object} errorResponseBody "Conta não encontrada"
// @Router /usuarios/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Bloquear ou reativar conta
// @Tags Administração
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do usuário"
// @Param input body domain.ChangeUserStatusDTO true "Novo status e motivo"
// @Success 200 {object} messageResponseType "Situação alterada"
// @Router /usuarios/{id}/alterar-status [put]
func (h *Handler) changeUserStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.ChangeUserStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	adminID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}
	input.AdminID = adminID

	if err := h.services.User.ChangeStatus(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "situação da conta alterada")
}

// canAccessAccount autoriza o dono da conta ou um admin.
func (h *Handler) canAccessAccount(c *gin.Context, accountID int64) bool {
	userID, err := getUserID(c)
	if err != nil {
		return false
	}
	if userID == accountID {
		return true
	}
	userType, err := getUserType(c)
	return err == nil && userType == domain.UserTypeAdmin
}
