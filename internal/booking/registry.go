package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry guarda as sessões de agendamento abertas, uma por modal. As
// sessões vivem só em memória: fechar o modal (ou o TTL de inatividade)
// as descarta, e uma próxima abertura começa do zero.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	opts   Options
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewRegistry(opts Options, ttl time.Duration, logger *zap.Logger) *Registry {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts,
		ttl:      ttl,
		logger:   logger,
		now:      opts.Now,
	}
}

// Open cria uma sessão nova para o atendente, já posicionada no mês
// corrente e sem data selecionada.
func (r *Registry) Open(attendantID int64, durationMin int) *Session {
	session := newSession(uuid.New().String(), attendantID, durationMin, r.opts)

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	r.logger.Debug("sessão de agendamento aberta",
		zap.String("sessao", session.ID),
		zap.Int64("id_atendente", attendantID),
	)

	return session
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	return session, ok
}

// Close descarta a sessão (modal fechado).
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Sweep remove sessões paradas há mais tempo que o TTL e devolve quantas
// foram descartadas.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, session := range r.sessions {
		if session.idleSince(now, r.ttl) {
			delete(r.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		r.logger.Debug("sessões de agendamento expiradas removidas", zap.Int("quantidade", removed))
	}

	return removed
}

// Run varre periodicamente até o canal de parada fechar.
func (r *Registry) Run(stop <-chan struct{}) {
	interval := r.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.Sweep()
		case <-stop:
			return
		}
	}
}
