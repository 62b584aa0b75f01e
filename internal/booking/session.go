package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidState indica uma operação tentada num estado que não a
// permite, como confirmar sem horário selecionado. O shell desabilita o
// botão de confirmação, então isso só acontece com chamadas fora de ordem.
var ErrInvalidState = errors.New("sessão de agendamento em estado inválido para esta operação")

// SlotPhase distingue os quatro estados da lista de horários: sem data
// selecionada, consulta em andamento, carregada (vazia ou não) e erro.
type SlotPhase string

const (
	SlotPhaseNoDate  SlotPhase = "SEM_DATA"
	SlotPhaseLoading SlotPhase = "CARREGANDO"
	SlotPhaseLoaded  SlotPhase = "CARREGADO"
	SlotPhaseError   SlotPhase = "ERRO"
)

// AvailabilityFetcher consulta os horários livres de um atendente para uma
// data e duração. A implementação real chama a API do marketplace.
type AvailabilityFetcher interface {
	Availability(ctx context.Context, attendantID int64, date string, durationMin int) ([]string, error)
}

type Options struct {
	Fetcher      AvailabilityFetcher
	FetchTimeout time.Duration
	Logger       *zap.Logger
	// Now permite fixar o relógio nos testes; por padrão time.Now.
	Now func() time.Time
}

// Session é o estado de um modal de agendamento aberto: o mês exibido, a
// data e o horário escolhidos e a lista de horários buscada. Uma sessão
// por modal; descartada quando o modal fecha.
type Session struct {
	ID          string
	AttendantID int64
	DurationMin int

	mu           sync.Mutex
	cursor       Date
	selectedDate *Date
	selectedSlot string
	phase        SlotPhase
	slots        []string
	loadMessage  string
	gen          uint64
	lastTouch    time.Time

	fetcher      AvailabilityFetcher
	fetchTimeout time.Duration
	logger       *zap.Logger
	now          func() time.Time
}

func newSession(id string, attendantID int64, durationMin int, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	today := opts.Now()

	return &Session{
		ID:          id,
		AttendantID: attendantID,
		DurationMin: durationMin,
		// Cursor no mês corrente, normalizado para o dia 1 para que a
		// aritmética de meses não transborde em meses curtos.
		cursor:       Date{Year: today.Year(), Month: today.Month(), Day: 1},
		phase:        SlotPhaseNoDate,
		lastTouch:    today,
		fetcher:      opts.Fetcher,
		fetchTimeout: opts.FetchTimeout,
		logger:       opts.Logger,
		now:          opts.Now,
	}
}

// NavigateMonth avança ou retrocede o mês exibido. A data selecionada é
// mantida mesmo quando sai da página visível; a busca de horários é
// chaveada só pela data, então a seleção continua valendo até o usuário
// escolher outra. Assimetria herdada do comportamento observado do fluxo.
func (s *Session) NavigateMonth(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	t := time.Date(s.cursor.Year, s.cursor.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	s.cursor = Date{Year: t.Year(), Month: t.Month(), Day: 1}
}

// SelectDate escolhe uma data do calendário e dispara a busca de
// horários. Datas passadas são ignoradas em silêncio, como as células
// desabilitadas do grid. Devolve false quando a seleção foi ignorada.
func (s *Session) SelectDate(date Date) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	today := dateOf(s.now())
	if date.Before(today) {
		return false
	}

	s.selectedDate = &date
	s.selectedSlot = ""
	s.slots = nil
	s.phase = SlotPhaseLoading
	s.loadMessage = ""
	s.gen++

	s.startFetch(s.gen, date)
	return true
}

// RefreshSlots rebusca os horários da data já selecionada (a ação
// "tentar novamente" após um erro). Sem data selecionada não faz nada.
func (s *Session) RefreshSlots() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.selectedDate == nil {
		return false
	}

	s.selectedSlot = ""
	s.slots = nil
	s.phase = SlotPhaseLoading
	s.loadMessage = ""
	s.gen++

	s.startFetch(s.gen, *s.selectedDate)
	return true
}

// startFetch lança a consulta com a geração capturada no momento do
// disparo. Deve ser chamado com o lock em mãos.
func (s *Session) startFetch(gen uint64, date Date) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.fetchTimeout)
		defer cancel()

		slots, err := s.fetcher.Availability(ctx, s.AttendantID, date.String(), s.DurationMin)
		s.applyFetchResult(gen, slots, err)
	}()
}

// applyFetchResult aplica a resposta só se a geração capturada ainda for a
// corrente. Uma resposta atrasada de uma data já substituída é descartada
// sem tocar no estado.
func (s *Session) applyFetchResult(gen uint64, slots []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		s.logger.Debug("resposta de disponibilidade obsoleta descartada",
			zap.String("sessao", s.ID),
			zap.Uint64("geracao_resposta", gen),
			zap.Uint64("geracao_atual", s.gen),
		)
		return
	}

	if err != nil {
		s.logger.Warn("erro ao buscar horários disponíveis",
			zap.String("sessao", s.ID),
			zap.Int64("id_atendente", s.AttendantID),
			zap.Error(err),
		)
		s.phase = SlotPhaseError
		s.slots = nil
		s.loadMessage = "Não foi possível carregar os horários disponíveis"
		return
	}

	s.phase = SlotPhaseLoaded
	s.slots = slots
}

// SelectSlot escolhe um horário da lista carregada. Valores fora da lista
// corrente são ignorados em silêncio.
func (s *Session) SelectSlot(slot string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.phase != SlotPhaseLoaded {
		return false
	}
	for _, candidate := range s.slots {
		if candidate == slot {
			s.selectedSlot = slot
			return true
		}
	}
	return false
}

// SubmitEnabled é verdadeiro apenas com data e horário selecionados sobre
// uma lista carregada sem erro.
func (s *Session) SubmitEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitEnabledLocked()
}

func (s *Session) submitEnabledLocked() bool {
	return s.selectedDate != nil && s.selectedSlot != "" && s.phase == SlotPhaseLoaded
}

// Fragment monta o trecho do payload de criação do agendamento: o início
// como data-hora local ISO-8601 e a duração do atendente.
func (s *Session) Fragment() (string, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.submitEnabledLocked() {
		return "", 0, ErrInvalidState
	}

	start := fmt.Sprintf("%sT%s:00", s.selectedDate.String(), s.selectedSlot)
	return start, s.DurationMin, nil
}

type SlotView struct {
	Phase    SlotPhase `json:"estado"`
	Slots    []string  `json:"horarios_disponiveis,omitempty"`
	Selected string    `json:"horario_selecionado,omitempty"`
	Message  string    `json:"mensagem,omitempty"`
}

type SessionView struct {
	ID            string       `json:"id_sessao"`
	AttendantID   int64        `json:"id_atendente"`
	DurationMin   int          `json:"duracao_minutos"`
	Calendar      CalendarView `json:"calendario"`
	SelectedDate  string       `json:"data_selecionada,omitempty"`
	SelectedLabel string       `json:"data_selecionada_exibicao,omitempty"`
	Slots         SlotView     `json:"horarios"`
	SubmitEnabled bool         `json:"pode_confirmar"`
}

// View calcula tudo que o shell precisa exibir a partir do estado atual.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := SessionView{
		ID:            s.ID,
		AttendantID:   s.AttendantID,
		DurationMin:   s.DurationMin,
		Calendar:      buildCalendar(s.cursor, dateOf(s.now()), s.selectedDate),
		SubmitEnabled: s.submitEnabledLocked(),
	}

	if s.selectedDate != nil {
		view.SelectedDate = s.selectedDate.String()
		view.SelectedLabel = s.selectedDate.DisplayLabel()
	}

	view.Slots = SlotView{Phase: s.phase, Selected: s.selectedSlot}
	switch s.phase {
	case SlotPhaseNoDate:
		view.Slots.Message = "Selecione uma data para ver os horários."
	case SlotPhaseLoading:
		view.Slots.Message = "Verificando horários..."
	case SlotPhaseLoaded:
		view.Slots.Slots = s.slots
		if len(s.slots) == 0 {
			view.Slots.Message = "Nenhum horário disponível para esta data."
		}
	case SlotPhaseError:
		view.Slots.Message = s.loadMessage
	}

	return view
}

func (s *Session) touch() {
	s.lastTouch = s.now()
}

func (s *Session) idleSince(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouch) > ttl
}
