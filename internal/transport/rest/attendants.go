package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amado/internal/domain"
)

// @Summary Vitrine de atendentes
// @Description Lista atendentes ativos com filtros de área, situação e busca textual
// @Tags Atendentes
// @Produce json
// @Param area_atuacao query string false "Área de atuação"
// @Param situacao query string false "Situação do cadastro"
// @Param busca query string false "Busca por nome ou especialidade"
// @Param limite query int false "Quantidade máxima"
// @Success 200 {object} successResponseBody "Lista de atendentes"
// @Router /atendentes [get]
func (h *Handler) getAttendants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limite", "0"))

	filter := domain.AttendantFilter{
		Status: c.Query("situacao"),
		Area:   c.Query("area_atuacao"),
		Search: c.Query("busca"),
		Limit:  limit,
	}

	attendants, err := h.services.Attendant.List(c.Request.Context(), filter)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, attendants)
}

// @Summary Atendentes em destaque
// @Description Lista os atendentes mais bem avaliados para a página inicial
// @Tags Atendentes
// @Produce json
// @Param limite query int false "Quantidade (padrão 6)"
// @Success 200 {object} successResponseBody "Lista de destaques"
// @Router /atendentes/destaque [get]
func (h *Handler) getFeaturedAttendants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limite", "6"))

	attendants, err := h.services.Attendant.Featured(c.Request.Context(), limit)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, attendants)
}

// @Summary Perfil do atendente
// @Tags Atendentes
// @Produce json
// @Param id path int true "ID do atendente"
// @Success 200 {object} domain.AttendantProfile "Perfil completo"
// @Failure 404 {object} errorResponseBody "Atendente não encontrado"
// @Router /atendentes/{id}/perfil [get]
func (h *Handler) getAttendantProfile(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	profile, err := h.services.Attendant.Profile(c.Request.Context(), bearerToken(c), id)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, profile)
}

// @Summary Atualizar perfil do atendente
// @Tags Atendentes
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do atendente"
// @Param input body domain.UpdateAttendantProfileDTO true "Campos a atualizar"
// @Success 200 {object} messageResponseType "Perfil atualizado"
// @Failure 403 {object} errorResponseBody "Perfil de outro usuário"
// @Router /atendentes/{id}/perfil [put]
func (h *Handler) updateAttendantProfile(c *gin.Context) {
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
	userType, _ := getUserType(c)
	if userID != id && userType != domain.UserTypeAdmin {
		forbiddenResponse(c, "só é possível editar o próprio perfil")
		return
	}

	var input domain.UpdateAttendantProfileDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Attendant.UpdateProfile(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "perfil atualizado com sucesso")
}

// @Summary Aprovar cadastro de atendente
// @Tags Administração
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do atendente"
// @Success 200 {object} messageResponseType "Atendente aprovado"
// @Router /atendentes/{id}/aprovar [post]
func (h *Handler) approveAttendant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.ModerateAttendantDTO
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Attendant.Approve(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "atendente aprovado")
}

// @Summary Bloquear atendente
// @Tags Administração
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do atendente"
// @Param input body domain.ModerateAttendantDTO true "Motivo do bloqueio"
// @Success 200 {object} messageResponseType "Atendente bloqueado"
// @Router /atendentes/{id}/bloquear [post]
func (h *Handler) blockAttendant(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.ModerateAttendantDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Attendant.Block(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "atendente bloqueado")
}

// @Summary Avaliações do atendente
// @Tags Atendentes
// @Produce json
// @Param id path int true "ID do atendente"
// @Success 200 {object} domain.ReviewSummary "Média, total e lista"
// @Router /atendentes/{id}/avaliacoes [get]
func (h *Handler) getAttendantReviews(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	summary, err := h.services.Attendant.Reviews(c.Request.Context(), id)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, summary)
}

// @Summary Agenda do atendente
// @Description Lista os agendamentos do próprio atendente, com filtro de status
// @Tags Atendentes
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID do atendente"
// @Param status query string false "Status do agendamento"
// @Success 200 {object} successResponseBody "Lista de agendamentos"
// @Router /atendentes/{id}/agendamentos [get]
func (h *Handler) getAttendantAppointments(c *gin.Context) {
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
		forbiddenResponse(c, "só é possível consultar a própria agenda")
		return
	}

	appointments, err := h.services.Attendant.Appointments(c.Request.Context(), bearerToken(c), id, c.Query("status"))
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
