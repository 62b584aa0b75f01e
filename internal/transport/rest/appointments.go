package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amado/internal/domain"
)

// @Summary Listar agendamentos
// @Description Lista os agendamentos visíveis ao usuário; admins enxergam todos com admin_view
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Produce json
// @Param admin_view query bool false "Visão administrativa"
// @Param status query string false "Status do agendamento"
// @Param area_atuacao query string false "Área do atendente"
// @Param data query string false "Data (YYYY-MM-DD)"
// @Param busca query string false "Busca por nome"
// @Success 200 {object} successResponseBody "Lista de agendamentos"
// @Router /agendamentos [get]
func (h *Handler) getAppointments(c *gin.Context) {
	userType, err := getUserType(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	filter := domain.AppointmentFilter{
		AdminView:    c.Query("admin_view") == "true" && userType == domain.UserTypeAdmin,
		Status:       c.Query("status"),
		Area:         c.Query("area_atuacao"),
		SelectedDate: c.Query("data"),
		Search:       c.Query("busca"),
	}

	appointments, err := h.services.Appointment.List(c.Request.Context(), bearerToken(c), filter)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, appointments)
}

// @Summary Cancelar agendamento (cliente)
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} messageResponseType "Agendamento cancelado"
// @Failure 409 {object} errorResponseBody "Status não permite cancelamento"
// @Router /agendamentos/{id}/cancelar/cliente [post]
func (h *Handler) cancelAppointmentByClient(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	if err := h.services.Appointment.CancelByClient(c.Request.Context(), bearerToken(c), id); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "agendamento cancelado")
}

// @Summary Confirmar solicitação (atendente)
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.ConfirmAppointmentDTO false "Link de atendimento online e observações"
// @Success 200 {object} messageResponseType "Agendamento confirmado"
// @Router /agendamentos/{id}/confirmar/atendente [post]
func (h *Handler) confirmAppointment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.ConfirmAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil && c.Request.ContentLength > 0 {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Appointment.ConfirmByAttendant(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "agendamento confirmado")
}

// @Summary Recusar solicitação (atendente)
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.RefuseAppointmentDTO true "Motivo da recusa"
// @Success 200 {object} messageResponseType "Solicitação recusada"
// @Router /agendamentos/{id}/recusar/atendente [post]
func (h *Handler) refuseAppointment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.RefuseAppointmentDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Appointment.RefuseByAttendant(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "solicitação recusada")
}

// @Summary Cancelar agendamento (admin)
// @Tags Administração
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.AdminCancelDTO true "Motivo do cancelamento"
// @Success 200 {object} messageResponseType "Agendamento cancelado"
// @Router /agendamentos/{id}/cancelar/admin [post]
func (h *Handler) cancelAppointmentByAdmin(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.AdminCancelDTO
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

	if err := h.services.Appointment.CancelByAdmin(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "agendamento cancelado pela administração")
}

// @Summary Marcar atendimento como realizado
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID do agendamento"
// @Success 200 {object} messageResponseType "Atendimento realizado"
// @Router /agendamentos/{id}/marcar-realizado [post]
func (h *Handler) markAppointmentCompleted(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	if err := h.services.Appointment.MarkCompleted(c.Request.Context(), bearerToken(c), id); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "atendimento marcado como realizado")
}

// @Summary Atualizar observações do atendente
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID do agendamento"
// @Param input body domain.UpdateNotesDTO true "Observações"
// @Success 200 {object} messageResponseType "Observações atualizadas"
// @Router /agendamentos/{id}/observacoes [put]
func (h *Handler) updateAppointmentNotes(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		badRequestResponse(c, "identificador inválido")
		return
	}

	var input domain.UpdateNotesDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	if err := h.services.Appointment.UpdateNotes(c.Request.Context(), bearerToken(c), id, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "observações atualizadas")
}

// @Summary Avaliar atendimento
// @Description Registra a avaliação de um atendimento realizado
// @Tags Agendamentos
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateReviewDTO true "Nota, comentário e anonimato"
// @Success 201 {object} messageResponseType "Avaliação registrada"
// @Failure 409 {object} errorResponseBody "Atendimento já avaliado"
// @Router /agendamentos/avaliacoes [post]
func (h *Handler) createReview(c *gin.Context) {
	var input domain.CreateReviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Appointment.CreateReview(c.Request.Context(), bearerToken(c), userID, input); err != nil {
		proxyErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusCreated, "avaliação registrada, obrigado!")
}
