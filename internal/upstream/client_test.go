package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"amado/config"
	"amado/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/atendentes/42/disponibilidade", r.URL.Path)
		assert.Equal(t, "2024-03-20", r.URL.Query().Get("data"))
		assert.Equal(t, "60", r.URL.Query().Get("duracao"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"horarios_disponiveis":["09:00","10:00"]}`))
	})

	slots, err := client.Availability(context.Background(), 42, "2024-03-20", 60)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, slots)
}

func TestErrorStatusPassthrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Horário indisponível"}`))
	})

	_, err := client.CreateAppointment(context.Background(), "token", domain.CreateAppointmentDTO{
		ClientID:      1,
		AttendantID:   42,
		StartDateTime: "2024-03-20T10:00:00",
		DurationMin:   60,
		Modality:      domain.ModalityOnline,
	})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Horário indisponível", apiErr.Error())
}

func TestErrorWithoutMessageBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.FeaturedAttendants(context.Background(), 6)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "502")
}

func TestLogin(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "maria@exemplo.com.br", body["email"])
		assert.Equal(t, "Senha123", body["senha"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"abc","usuario":{"id_usuario":7,"nome_completo":"Maria","tipo_usuario":"CLIENTE"}}`))
	})

	result, err := client.Login(context.Background(), domain.LoginRequest{
		Email:    "maria@exemplo.com.br",
		Password: "Senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", result.Token)
	assert.Equal(t, int64(7), result.User.ID)
	assert.Equal(t, domain.UserTypeClient, result.User.Type)
}

func TestBearerTokenForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer meu-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id_usuario":7,"nome_completo":"Maria"}`))
	})

	user, err := client.GetUser(context.Background(), "meu-token", 7)
	require.NoError(t, err)
	assert.Equal(t, "Maria", user.FullName)
}

func TestListAttendantsFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/atendentes", r.URL.Path)
		assert.Equal(t, "SAUDE", r.URL.Query().Get("area_atuacao"))
		assert.Equal(t, "ana", r.URL.Query().Get("busca"))
		assert.Equal(t, "12", r.URL.Query().Get("limite"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"atendentes":[{"id_usuario":3,"nome_completo":"Ana","area_atuacao":"SAUDE"}]}`))
	})

	attendants, err := client.ListAttendants(context.Background(), domain.AttendantFilter{
		Area:   "SAUDE",
		Search: "ana",
		Limit:  12,
	})
	require.NoError(t, err)
	require.Len(t, attendants, 1)
	assert.Equal(t, domain.PracticeAreaHealth, attendants[0].Area)
}

func TestInvalidResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`não é json`))
	})

	_, err := client.FeaturedAttendants(context.Background(), 6)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "formato de resposta inválido")
}
