package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amado/internal/domain"
)

type openBookingRequest struct {
	AttendantID int64 `json:"id_atendente" binding:"required"`
	DurationMin int   `json:"duracao_minutos"`
}

type navigateMonthRequest struct {
	Delta int `json:"delta" binding:"required,oneof=-1 1"`
}

type selectDateRequest struct {
	Date string `json:"data" binding:"required"`
}

type selectSlotRequest struct {
	Slot string `json:"horario" binding:"required"`
}

// @Summary Abrir sessão de agendamento
// @Description Abre o modal de agendamento para um atendente e devolve o calendário do mês corrente
// @Tags Agendamento
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body openBookingRequest true "Atendente e duração do atendimento"
// @Success 201 {object} booking.SessionView "Estado inicial da sessão"
// @Failure 404 {object} errorResponseBody "Atendente não encontrado"
// @Router /agendamento/sessoes [post]
func (h *Handler) openBookingSession(c *gin.Context) {
	var input openBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("formato de dados inválido", zap.Error(err))
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	view, err := h.services.Booking.Open(c.Request.Context(), bearerToken(c), input.AttendantID, input.DurationMin)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	createdResponse(c, view)
}

// @Summary Estado da sessão
// @Description Devolve o calendário, a lista de horários e o estado de confirmação
// @Tags Agendamento
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} booking.SessionView "Estado atual"
// @Failure 404 {object} errorResponseBody "Sessão não encontrada ou expirada"
// @Router /agendamento/sessoes/{id} [get]
func (h *Handler) getBookingSession(c *gin.Context) {
	view, err := h.services.Booking.View(c.Param("id"))
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, view)
}

// @Summary Navegar entre meses
// @Description Avança ou retrocede o mês exibido; a data selecionada é mantida
// @Tags Agendamento
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param input body navigateMonthRequest true "Delta de navegação (-1 ou 1)"
// @Success 200 {object} booking.SessionView "Estado atualizado"
// @Router /agendamento/sessoes/{id}/mes [post]
func (h *Handler) navigateBookingMonth(c *gin.Context) {
	var input navigateMonthRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	view, err := h.services.Booking.NavigateMonth(c.Param("id"), input.Delta)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, view)
}

// @Summary Selecionar data
// @Description Escolhe uma data e dispara a busca de horários; datas passadas são ignoradas
// @Tags Agendamento
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param input body selectDateRequest true "Data (YYYY-MM-DD)"
// @Success 200 {object} booking.SessionView "Estado atualizado"
// @Router /agendamento/sessoes/{id}/data [post]
func (h *Handler) selectBookingDate(c *gin.Context) {
	var input selectDateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	view, err := h.services.Booking.SelectDate(c.Param("id"), input.Date)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, view)
}

// @Summary Selecionar horário
// @Description Escolhe um horário da lista carregada; valores fora da lista são ignorados
// @Tags Agendamento
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param input body selectSlotRequest true "Horário (HH:MM)"
// @Success 200 {object} booking.SessionView "Estado atualizado"
// @Router /agendamento/sessoes/{id}/horario [post]
func (h *Handler) selectBookingSlot(c *gin.Context) {
	var input selectSlotRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	view, err := h.services.Booking.SelectSlot(c.Param("id"), input.Slot)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, view)
}

// @Summary Recarregar horários
// @Description Rebusca os horários da data selecionada após um erro de carga
// @Tags Agendamento
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} booking.SessionView "Estado atualizado"
// @Router /agendamento/sessoes/{id}/recarregar [post]
func (h *Handler) refreshBookingSlots(c *gin.Context) {
	view, err := h.services.Booking.RefreshSlots(c.Param("id"))
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, view)
}

// @Summary Confirmar agendamento
// @Description Monta a solicitação com a data e o horário da sessão e a registra na plataforma
// @Tags Agendamento
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da sessão"
// @Param input body domain.ConfirmBookingDTO true "Modalidade e assunto"
// @Success 201 {object} domain.Appointment "Agendamento criado"
// @Failure 409 {object} errorResponseBody "Horário indisponível"
// @Router /agendamento/sessoes/{id}/confirmar [post]
func (h *Handler) confirmBooking(c *gin.Context) {
	var input domain.ConfirmBookingDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "formato de dados inválido")
		return
	}

	clientID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	created, err := h.services.Booking.Confirm(c.Request.Context(), bearerToken(c), c.Param("id"), clientID, input)
	if err != nil {
		proxyErrorResponse(c, err)
		return
	}

	createdResponse(c, created)
}

// @Summary Fechar sessão
// @Description Descarta a sessão do modal; as escolhas não são persistidas
// @Tags Agendamento
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID da sessão"
// @Success 200 {object} messageResponseType "Sessão encerrada"
// @Router /agendamento/sessoes/{id} [delete]
func (h *Handler) closeBookingSession(c *gin.Context) {
	h.services.Booking.Close(c.Param("id"))
	messageResponse(c, http.StatusOK, "sessão encerrada")
}
