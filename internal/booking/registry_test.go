package booking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry(clock *fakeClock, ttl time.Duration) *Registry {
	return NewRegistry(Options{
		Fetcher: &stubFetcher{},
		Now:     clock.Now,
	}, ttl, nil)
}

func TestRegistryOpenAndGet(t *testing.T) {
	clock := &fakeClock{now: fixedClock()}
	registry := newTestRegistry(clock, 30*time.Minute)

	session := registry.Open(42, 60)
	require.NotEmpty(t, session.ID)

	got, ok := registry.Get(session.ID)
	require.True(t, ok)
	assert.Same(t, session, got)

	_, ok = registry.Get("inexistente")
	assert.False(t, ok)
}

func TestRegistryOpenGeneratesDistinctIDs(t *testing.T) {
	clock := &fakeClock{now: fixedClock()}
	registry := newTestRegistry(clock, 30*time.Minute)

	a := registry.Open(1, 30)
	b := registry.Open(1, 30)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegistryClose(t *testing.T) {
	clock := &fakeClock{now: fixedClock()}
	registry := newTestRegistry(clock, 30*time.Minute)

	session := registry.Open(42, 60)
	registry.Close(session.ID)

	_, ok := registry.Get(session.ID)
	assert.False(t, ok)

	// Fechar de novo não explode.
	registry.Close(session.ID)
}

func TestRegistrySweepRemovesIdleSessions(t *testing.T) {
	clock := &fakeClock{now: fixedClock()}
	registry := newTestRegistry(clock, 30*time.Minute)

	idle := registry.Open(1, 60)
	active := registry.Open(2, 60)

	clock.Advance(20 * time.Minute)
	active.NavigateMonth(1)

	clock.Advance(15 * time.Minute)
	removed := registry.Sweep()

	assert.Equal(t, 1, removed)
	_, ok := registry.Get(idle.ID)
	assert.False(t, ok)
	_, ok = registry.Get(active.ID)
	assert.True(t, ok)
}

func TestRegistrySweepKeepsFreshSessions(t *testing.T) {
	clock := &fakeClock{now: fixedClock()}
	registry := newTestRegistry(clock, 30*time.Minute)

	registry.Open(1, 60)
	clock.Advance(10 * time.Minute)

	assert.Zero(t, registry.Sweep())
}
