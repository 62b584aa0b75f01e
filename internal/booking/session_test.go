package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 15 de março de 2024, uma sexta-feira.
func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

type stubFetcher struct {
	mu    sync.Mutex
	slots []string
	err   error
	calls int
}

func (f *stubFetcher) Availability(ctx context.Context, attendantID int64, date string, durationMin int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.slots, f.err
}

func (f *stubFetcher) set(slots []string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots = slots
	f.err = err
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// blockingFetcher nunca responde; serve para aplicar resultados na mão.
type blockingFetcher struct{}

func (blockingFetcher) Availability(ctx context.Context, attendantID int64, date string, durationMin int) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newTestSession(fetcher AvailabilityFetcher) *Session {
	return newSession("sessao-teste", 42, 60, Options{
		Fetcher: fetcher,
		Now:     fixedClock,
	})
}

func waitForPhase(t *testing.T, s *Session, phase SlotPhase) {
	t.Helper()
	require.Eventually(t, func() bool {
		return s.View().Slots.Phase == phase
	}, time.Second, 5*time.Millisecond)
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(&stubFetcher{})
	view := s.View()

	assert.Equal(t, SlotPhaseNoDate, view.Slots.Phase)
	assert.Equal(t, "Selecione uma data para ver os horários.", view.Slots.Message)
	assert.Empty(t, view.SelectedDate)
	assert.False(t, view.SubmitEnabled)
	assert.Equal(t, 2024, view.Calendar.Year)
	assert.Equal(t, time.March, view.Calendar.Month)
	assert.Equal(t, int64(42), view.AttendantID)
	assert.Equal(t, 60, view.DurationMin)
}

func TestSelectPastDateIgnored(t *testing.T) {
	fetcher := &stubFetcher{}
	s := newTestSession(fetcher)

	ok := s.SelectDate(Date{Year: 2024, Month: time.March, Day: 14})

	assert.False(t, ok)
	assert.Equal(t, SlotPhaseNoDate, s.View().Slots.Phase)
	assert.Zero(t, fetcher.callCount())
}

func TestSelectDateLoadsSlots(t *testing.T) {
	fetcher := &stubFetcher{slots: []string{"09:00", "10:00"}}
	s := newTestSession(fetcher)

	ok := s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	require.True(t, ok)

	waitForPhase(t, s, SlotPhaseLoaded)
	view := s.View()
	assert.Equal(t, []string{"09:00", "10:00"}, view.Slots.Slots)
	assert.Equal(t, "2024-03-20", view.SelectedDate)
	assert.Equal(t, "20/03/2024", view.SelectedLabel)
	assert.Empty(t, view.Slots.Message)
}

func TestSelectTodayAllowed(t *testing.T) {
	fetcher := &stubFetcher{slots: []string{"14:00"}}
	s := newTestSession(fetcher)

	assert.True(t, s.SelectDate(Date{Year: 2024, Month: time.March, Day: 15}))
	waitForPhase(t, s, SlotPhaseLoaded)
}

func TestLoadedWithoutSlotsShowsMessage(t *testing.T) {
	s := newTestSession(&stubFetcher{slots: []string{}})

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)

	view := s.View()
	assert.Empty(t, view.Slots.Slots)
	assert.Equal(t, "Nenhum horário disponível para esta data.", view.Slots.Message)
	assert.False(t, view.SubmitEnabled)
}

func TestFetchErrorThenRetry(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("falha de rede")}
	s := newTestSession(fetcher)

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseError)
	assert.Equal(t, "Não foi possível carregar os horários disponíveis", s.View().Slots.Message)

	fetcher.set([]string{"09:00"}, nil)
	require.True(t, s.RefreshSlots())
	waitForPhase(t, s, SlotPhaseLoaded)
	assert.Equal(t, []string{"09:00"}, s.View().Slots.Slots)
}

func TestRefreshWithoutDateIsNoop(t *testing.T) {
	s := newTestSession(&stubFetcher{})
	assert.False(t, s.RefreshSlots())
}

func TestStaleResponseDiscarded(t *testing.T) {
	s := newTestSession(blockingFetcher{})

	// Duas seleções em sequência: a resposta da primeira chega atrasada.
	require.True(t, s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20}))
	require.True(t, s.SelectDate(Date{Year: 2024, Month: time.March, Day: 21}))

	s.applyFetchResult(1, []string{"09:00"}, nil)
	assert.Equal(t, SlotPhaseLoading, s.View().Slots.Phase)

	s.applyFetchResult(2, []string{"10:00"}, nil)
	view := s.View()
	assert.Equal(t, SlotPhaseLoaded, view.Slots.Phase)
	assert.Equal(t, []string{"10:00"}, view.Slots.Slots)
	assert.Equal(t, "2024-03-21", view.SelectedDate)
}

func TestStaleErrorDiscarded(t *testing.T) {
	s := newTestSession(blockingFetcher{})

	require.True(t, s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20}))
	require.True(t, s.RefreshSlots())

	s.applyFetchResult(1, nil, errors.New("timeout"))
	assert.Equal(t, SlotPhaseLoading, s.View().Slots.Phase)

	s.applyFetchResult(2, []string{"11:00"}, nil)
	assert.Equal(t, SlotPhaseLoaded, s.View().Slots.Phase)
}

func TestSelectSlotMembership(t *testing.T) {
	s := newTestSession(&stubFetcher{slots: []string{"09:00", "10:00"}})

	// Sem lista carregada, nada a selecionar.
	assert.False(t, s.SelectSlot("09:00"))

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)

	assert.True(t, s.SelectSlot("10:00"))
	assert.Equal(t, "10:00", s.View().Slots.Selected)

	assert.False(t, s.SelectSlot("11:00"))
	assert.Equal(t, "10:00", s.View().Slots.Selected)
}

func TestNewDateClearsSelectedSlot(t *testing.T) {
	s := newTestSession(&stubFetcher{slots: []string{"09:00"}})

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)
	require.True(t, s.SelectSlot("09:00"))

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 21})
	assert.Empty(t, s.View().Slots.Selected)
	assert.False(t, s.SubmitEnabled())
}

func TestSubmitEnabled(t *testing.T) {
	s := newTestSession(&stubFetcher{slots: []string{"09:00"}})
	assert.False(t, s.SubmitEnabled(), "sem data")

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)
	assert.False(t, s.SubmitEnabled(), "sem horário")

	require.True(t, s.SelectSlot("09:00"))
	assert.True(t, s.SubmitEnabled())
}

func TestSubmitDisabledOnError(t *testing.T) {
	fetcher := &stubFetcher{slots: []string{"09:00"}}
	s := newTestSession(fetcher)

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)
	require.True(t, s.SelectSlot("09:00"))
	require.True(t, s.SubmitEnabled())

	// Uma recarga com erro derruba a habilitação mesmo com data escolhida.
	fetcher.set(nil, errors.New("falha"))
	s.RefreshSlots()
	waitForPhase(t, s, SlotPhaseError)
	assert.False(t, s.SubmitEnabled())
}

func TestFragment(t *testing.T) {
	s := newTestSession(&stubFetcher{slots: []string{"09:00", "10:00"}})

	_, _, err := s.Fragment()
	assert.ErrorIs(t, err, ErrInvalidState)

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)
	require.True(t, s.SelectSlot("10:00"))

	start, durationMin, err := s.Fragment()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-20T10:00:00", start)
	assert.Equal(t, 60, durationMin)
}

func TestNavigateMonthRoundTrip(t *testing.T) {
	s := newTestSession(&stubFetcher{})

	for i := 0; i < 12; i++ {
		s.NavigateMonth(1)
	}
	view := s.View()
	assert.Equal(t, 2025, view.Calendar.Year)
	assert.Equal(t, time.March, view.Calendar.Month)

	for i := 0; i < 12; i++ {
		s.NavigateMonth(-1)
	}
	view = s.View()
	assert.Equal(t, 2024, view.Calendar.Year)
	assert.Equal(t, time.March, view.Calendar.Month)
}

func TestNavigateMonthYearRollover(t *testing.T) {
	s := newTestSession(&stubFetcher{})

	for i := 0; i < 10; i++ {
		s.NavigateMonth(1)
	}
	view := s.View()
	assert.Equal(t, 2025, view.Calendar.Year)
	assert.Equal(t, time.January, view.Calendar.Month)
}

func TestNavigateMonthKeepsSelection(t *testing.T) {
	s := newTestSession(&stubFetcher{slots: []string{"09:00"}})

	s.SelectDate(Date{Year: 2024, Month: time.March, Day: 20})
	waitForPhase(t, s, SlotPhaseLoaded)
	require.True(t, s.SelectSlot("09:00"))

	s.NavigateMonth(1)
	view := s.View()
	assert.Equal(t, time.April, view.Calendar.Month)
	assert.Equal(t, "2024-03-20", view.SelectedDate)
	assert.Equal(t, "09:00", view.Slots.Selected)
	assert.True(t, view.SubmitEnabled)

	// De volta a março a célula volta marcada.
	s.NavigateMonth(-1)
	found := false
	for _, cell := range s.View().Calendar.Cells {
		if cell.Day == 20 {
			found = cell.Selected
		}
	}
	assert.True(t, found)
}
