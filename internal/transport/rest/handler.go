package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"amado/config"
	"amado/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
	limiters *rateLimiterStore
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
		limiters: newRateLimiterStore(config.RateLimit.RequestsPerMinute, config.RateLimit.Burst),
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())

	router.Use(h.errorMiddleware())

	router.Use(h.corsMiddleware())

	if h.config.RateLimit.Enabled {
		router.Use(h.rateLimitMiddleware())
	}

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/registrar", h.register)
			auth.POST("/login", h.login)
		}

		attendants := api.Group("/atendentes")
		{
			attendants.GET("/", h.getAttendants)
			attendants.GET("/destaque", h.getFeaturedAttendants)
			attendants.GET("/:id/perfil", h.getAttendantProfile)
			attendants.GET("/:id/avaliacoes", h.getAttendantReviews)

			authed := attendants.Group("/", h.authMiddleware())
			{
				authed.PUT("/:id/perfil", h.updateAttendantProfile)
				authed.GET("/:id/agendamentos", h.attendantMiddleware(), h.getAttendantAppointments)

				admin := authed.Group("/", h.adminMiddleware())
				{
					admin.POST("/:id/aprovar", h.approveAttendant)
					admin.POST("/:id/bloquear", h.blockAttendant)
				}
			}
		}

		clients := api.Group("/clientes")
		clients.Use(h.authMiddleware())
		{
			clients.GET("/:id/perfil", h.getClientProfile)
			clients.PUT("/:id/perfil", h.updateClientProfile)
		}

		users := api.Group("/usuarios")
		users.Use(h.authMiddleware())
		{
			users.POST("/:id/alterar-senha", h.changePassword)

			admin := users.Group("/", h.adminMiddleware())
			{
				admin.GET("/", h.getUsers)
				admin.GET("/:id", h.getUserByID)
				admin.PUT("/:id/alterar-status", h.changeUserStatus)
			}
		}

		appointments := api.Group("/agendamentos")
		appointments.Use(h.authMiddleware())
		{
			appointments.GET("/", h.getAppointments)
			appointments.POST("/:id/cancelar/cliente", h.clientMiddleware(), h.cancelAppointmentByClient)
			appointments.POST("/:id/confirmar/atendente", h.attendantMiddleware(), h.confirmAppointment)
			appointments.POST("/:id/recusar/atendente", h.attendantMiddleware(), h.refuseAppointment)
			appointments.POST("/:id/cancelar/admin", h.adminMiddleware(), h.cancelAppointmentByAdmin)
			appointments.POST("/:id/marcar-realizado", h.attendantMiddleware(), h.markAppointmentCompleted)
			appointments.PUT("/:id/observacoes", h.attendantMiddleware(), h.updateAppointmentNotes)
			appointments.POST("/avaliacoes", h.clientMiddleware(), h.createReview)
		}

		h.initBookingRoutes(api)

		addresses := api.Group("/enderecos")
		{
			addresses.GET("/cep/:cep", h.lookupCEP)
		}
	}
}

// initBookingRoutes monta o ciclo de vida da sessão do modal de
// agendamento: abrir, interagir com o calendário e confirmar ou fechar.
func (h *Handler) initBookingRoutes(api *gin.RouterGroup) {
	booking := api.Group("/agendamento/sessoes")
	booking.Use(h.authMiddleware(), h.clientMiddleware())
	{
		booking.POST("/", h.openBookingSession)
		booking.GET("/:id", h.getBookingSession)
		booking.POST("/:id/mes", h.navigateBookingMonth)
		booking.POST("/:id/data", h.selectBookingDate)
		booking.POST("/:id/horario", h.selectBookingSlot)
		booking.POST("/:id/recarregar", h.refreshBookingSlots)
		booking.POST("/:id/confirmar", h.confirmBooking)
		booking.DELETE("/:id", h.closeBookingSession)
	}
}
