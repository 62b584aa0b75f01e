package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"amado/config"
	"amado/internal/booking"
	"amado/internal/domain"
	"amado/internal/upstream"
)

// 15 de março de 2024.
func bookingClock() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

type marketplaceStub struct {
	mu           sync.Mutex
	created      *domain.CreateAppointmentDTO
	availability []string
}

func (m *marketplaceStub) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/atendentes/42/perfil":
			json.NewEncoder(w).Encode(domain.AttendantProfile{
				User:    domain.User{ID: 42, FullName: "Dra. Ana"},
				Details: domain.AttendantDetails{DefaultDurationMin: 45},
			})
		case r.Method == http.MethodGet && r.URL.Path == "/atendentes/42/disponibilidade":
			m.mu.Lock()
			slots := m.availability
			m.mu.Unlock()
			json.NewEncoder(w).Encode(map[string]interface{}{"horarios_disponiveis": slots})
		case r.Method == http.MethodPost && r.URL.Path == "/agendamentos":
			var dto domain.CreateAppointmentDTO
			json.NewDecoder(r.Body).Decode(&dto)
			m.mu.Lock()
			m.created = &dto
			m.mu.Unlock()

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message":            "Agendamento solicitado",
				"agendamento_criado": domain.Appointment{ID: 99, ClientID: dto.ClientID, AttendantID: dto.AttendantID},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"rota não encontrada"}`))
		}
	}
}

func (m *marketplaceStub) createdDTO() *domain.CreateAppointmentDTO {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}

func newBookingFixture(t *testing.T) (*BookingServiceImpl, *marketplaceStub) {
	t.Helper()

	stub := &marketplaceStub{availability: []string{"09:00", "10:00"}}
	srv := httptest.NewServer(stub.handler())
	t.Cleanup(srv.Close)

	client := upstream.NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())

	registry := booking.NewRegistry(booking.Options{
		Fetcher: client,
		Now:     bookingClock,
	}, 30*time.Minute, zap.NewNop())

	return NewBookingService(client, registry, zap.NewNop()), stub
}

func waitLoaded(t *testing.T, svc *BookingServiceImpl, sessionID string) booking.SessionView {
	t.Helper()

	var view booking.SessionView
	require.Eventually(t, func() bool {
		v, err := svc.View(sessionID)
		if err != nil {
			return false
		}
		view = v
		return view.Slots.Phase == booking.SlotPhaseLoaded
	}, time.Second, 5*time.Millisecond)
	return view
}

func TestBookingOpenUsesProfileDuration(t *testing.T) {
	svc, _ := newBookingFixture(t)

	view, err := svc.Open(context.Background(), "tok", 42, 0)
	require.NoError(t, err)

	assert.Equal(t, 45, view.DurationMin)
	assert.Equal(t, booking.SlotPhaseNoDate, view.Slots.Phase)
	assert.Equal(t, time.March, view.Calendar.Month)
}

func TestBookingFullFlow(t *testing.T) {
	svc, stub := newBookingFixture(t)

	opened, err := svc.Open(context.Background(), "tok", 42, 60)
	require.NoError(t, err)

	view, err := svc.SelectDate(opened.ID, "2024-03-20")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20", view.SelectedDate)

	view = waitLoaded(t, svc, opened.ID)
	assert.Equal(t, []string{"09:00", "10:00"}, view.Slots.Slots)
	assert.False(t, view.SubmitEnabled)

	view, err = svc.SelectSlot(opened.ID, "10:00")
	require.NoError(t, err)
	assert.True(t, view.SubmitEnabled)

	created, err := svc.Confirm(context.Background(), "tok", opened.ID, 7, domain.ConfirmBookingDTO{
		Modality: domain.ModalityOnline,
		Subject:  "Primeira consulta",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), created.ID)

	dto := stub.createdDTO()
	require.NotNil(t, dto)
	assert.Equal(t, int64(7), dto.ClientID)
	assert.Equal(t, int64(42), dto.AttendantID)
	assert.Equal(t, "2024-03-20T10:00:00", dto.StartDateTime)
	assert.Equal(t, 60, dto.DurationMin)
	assert.Equal(t, domain.ModalityOnline, dto.Modality)
	assert.Equal(t, "Primeira consulta", dto.Subject)

	// Confirmada, a sessão é descartada.
	_, err = svc.View(opened.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBookingConfirmWithoutSlot(t *testing.T) {
	svc, stub := newBookingFixture(t)

	opened, err := svc.Open(context.Background(), "tok", 42, 60)
	require.NoError(t, err)

	_, err = svc.SelectDate(opened.ID, "2024-03-20")
	require.NoError(t, err)
	waitLoaded(t, svc, opened.ID)

	_, err = svc.Confirm(context.Background(), "tok", opened.ID, 7, domain.ConfirmBookingDTO{Modality: domain.ModalityOnline})
	assert.ErrorIs(t, err, booking.ErrInvalidState)
	assert.Nil(t, stub.createdDTO())

	// A sessão sobrevive à tentativa inválida.
	_, err = svc.View(opened.ID)
	assert.NoError(t, err)
}

func TestBookingPastDateKeepsState(t *testing.T) {
	svc, _ := newBookingFixture(t)

	opened, err := svc.Open(context.Background(), "tok", 42, 60)
	require.NoError(t, err)

	view, err := svc.SelectDate(opened.ID, "2024-03-10")
	require.NoError(t, err)
	assert.Empty(t, view.SelectedDate)
	assert.Equal(t, booking.SlotPhaseNoDate, view.Slots.Phase)
}

func TestBookingInvalidDateFormat(t *testing.T) {
	svc, _ := newBookingFixture(t)

	opened, err := svc.Open(context.Background(), "tok", 42, 60)
	require.NoError(t, err)

	_, err = svc.SelectDate(opened.ID, "20/03/2024")
	assert.Error(t, err)
}

func TestBookingUnknownSession(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.View("nao-existe")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SelectDate("nao-existe", "2024-03-20")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.NavigateMonth("nao-existe", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
