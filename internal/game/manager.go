package game

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

type managedSession struct {
	mu       sync.Mutex
	session  *Session
	lastUsed time.Time
}

// Manager keeps independent sessions, one per player. Each session has its
// own lock and its own random source; nothing is shared between them.
type Manager struct {
	sessions map[string]*managedSession
	mu       sync.RWMutex

	seeds  *rand.Rand // guarded by mu
	clock  quartz.Clock
	logger *log.Logger
}

func NewManager(clock quartz.Clock, seed int64, logger *log.Logger) *Manager {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Manager{
		sessions: make(map[string]*managedSession),
		seeds:    rand.New(rand.NewSource(seed)),
		clock:    clock,
		logger:   logger,
	}
}

// Create registers a new session and returns its ID.
func (m *Manager) Create() string {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	s := NewSession(
		WithSeed(m.seeds.Int63()),
		WithLogger(m.logger.With("session", id)),
	)
	m.sessions[id] = &managedSession{session: s, lastUsed: m.clock.Now()}
	return id
}

// With runs fn while holding the session's lock.
func (m *Manager) With(id string, fn func(*Session) error) error {
	m.mu.RLock()
	ms, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lastUsed = m.clock.Now()
	return fn(ms.session)
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions unused for longer than idle and returns how many went.
func (m *Manager) Sweep(idle time.Duration) int {
	now := m.clock.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, ms := range m.sessions {
		ms.mu.Lock()
		expired := now.Sub(ms.lastUsed) > idle
		ms.mu.Unlock()
		if expired {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Debug("swept idle sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// StartSweeper calls Sweep every idle/2 until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, idle time.Duration) quartz.Waiter {
	every := idle / 2
	if every <= 0 {
		every = idle
	}
	return m.clock.TickerFunc(ctx, every, func() error {
		m.Sweep(idle)
		return nil
	}, "sweeper")
}
