package service

import (
	"context"

	"go.uber.org/zap"

	"amado/config"
	"amado/internal/booking"
	"amado/internal/domain"
	"amado/internal/upstream"
)

type Deps struct {
	Upstream *upstream.Client
	CEP      *upstream.CEPClient
	Registry *booking.Registry
	Logger   *zap.Logger
	Config   *config.Config
}

type Services struct {
	Auth        AuthService
	Attendant   AttendantService
	User        UserService
	Appointment AppointmentService
	Booking     BookingService
	Address     AddressService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Auth:        NewAuthService(deps.Upstream, deps.Config.JWT, deps.Logger),
		Attendant:   NewAttendantService(deps.Upstream, deps.Logger),
		User:        NewUserService(deps.Upstream, deps.Logger),
		Appointment: NewAppointmentService(deps.Upstream, deps.Logger),
		Booking:     NewBookingService(deps.Upstream, deps.Registry, deps.Logger),
		Address:     NewAddressService(deps.CEP, deps.Logger),
	}
}

type AuthService interface {
	Login(ctx context.Context, dto domain.LoginRequest) (*domain.LoginResult, error)
	Register(ctx context.Context, dto domain.RegisterRequest) (*domain.RegisterResult, error)
	ParseToken(tokenString string) (int64, domain.UserType, error)
}

type AttendantService interface {
	List(ctx context.Context, filter domain.AttendantFilter) ([]domain.Attendant, error)
	Featured(ctx context.Context, limit int) ([]domain.Attendant, error)
	Profile(ctx context.Context, token string, id int64) (*domain.AttendantProfile, error)
	UpdateProfile(ctx context.Context, token string, id int64, dto domain.UpdateAttendantProfileDTO) error
	Approve(ctx context.Context, token string, id int64, dto domain.ModerateAttendantDTO) error
	Block(ctx context.Context, token string, id int64, dto domain.ModerateAttendantDTO) error
	Reviews(ctx context.Context, id int64) (*domain.ReviewSummary, error)
	Appointments(ctx context.Context, token string, id int64, status string) ([]domain.Appointment, error)
}

type UserService interface {
	ClientProfile(ctx context.Context, token string, id int64) (*domain.ClientProfile, error)
	UpdateClientProfile(ctx context.Context, token string, id int64, dto domain.UpdateUserDTO) error
	ChangePassword(ctx context.Context, token string, id int64, dto domain.PasswordUpdateDTO) error
	List(ctx context.Context, token string, filter domain.UserFilter) ([]domain.User, error)
	GetByID(ctx context.Context, token string, id int64) (*domain.User, error)
	ChangeStatus(ctx context.Context, token string, id int64, dto domain.ChangeUserStatusDTO) error
}

type AppointmentService interface {
	List(ctx context.Context, token string, filter domain.AppointmentFilter) ([]domain.Appointment, error)
	CancelByClient(ctx context.Context, token string, id int64) error
	ConfirmByAttendant(ctx context.Context, token string, id int64, dto domain.ConfirmAppointmentDTO) error
	RefuseByAttendant(ctx context.Context, token string, id int64, dto domain.RefuseAppointmentDTO) error
	CancelByAdmin(ctx context.Context, token string, id int64, dto domain.AdminCancelDTO) error
	MarkCompleted(ctx context.Context, token string, id int64) error
	UpdateNotes(ctx context.Context, token string, id int64, dto domain.UpdateNotesDTO) error
	CreateReview(ctx context.Context, token string, reviewerID int64, dto domain.CreateReviewDTO) error
}

// BookingService conduz a sessão do modal de agendamento: calendário,
// escolha de data e horário e a confirmação final contra a API.
type BookingService interface {
	Open(ctx context.Context, token string, attendantID int64, durationMin int) (booking.SessionView, error)
	View(sessionID string) (booking.SessionView, error)
	NavigateMonth(sessionID string, delta int) (booking.SessionView, error)
	SelectDate(sessionID string, date string) (booking.SessionView, error)
	SelectSlot(sessionID string, slot string) (booking.SessionView, error)
	RefreshSlots(sessionID string) (booking.SessionView, error)
	Confirm(ctx context.Context, token string, sessionID string, clientID int64, dto domain.ConfirmBookingDTO) (*domain.Appointment, error)
	Close(sessionID string)
}

type AddressService interface {
	LookupCEP(ctx context.Context, cep string) (*domain.CEPLookup, error)
}
