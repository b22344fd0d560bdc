package studio

import (
	"fmt"
	"sync"
	"time"

	"github.com/rtaylor52242/logo-animator-studio/common"
	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
)

// Manager owns every live session and the video store behind them.
// One instance per process.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	Videos   *VideoStore
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		Videos:   NewVideoStore(),
	}
}

// Sessions is the process-wide manager used by the HTTP layer.
var Sessions = NewManager()

// GetOrCreate returns the session for id, creating and resolving its
// credential gate on first sight.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.Touch()
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok = m.sessions[id]; ok {
		return s
	}
	s = newSession(id)
	s.ResolveCredential(CheckCredential())
	m.sessions[id] = s
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SubscriberCount totals the attached progress stream readers across
// all sessions. Mostly a health signal; it should track the number of
// open progress connections.
func (m *Manager) SubscriberCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, s := range m.sessions {
		total += s.SubscriberCount()
	}
	return total
}

// StartJanitor periodically drops sessions idle past SESSION_TTL and
// releases their stored video bytes. In-flight sessions are skipped.
func (m *Manager) StartJanitor() {
	interval := config.SessionTTL / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	common.SafeGoroutine(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			m.sweep()
		}
	})
}

func (m *Manager) sweep() {
	var dropped []string
	m.mu.Lock()
	for id, s := range m.sessions {
		if s.expired(config.SessionTTL) {
			m.Videos.Delete(s.CurrentVideoId())
			s.closeSubscribers()
			delete(m.sessions, id)
			dropped = append(dropped, id)
		}
	}
	m.mu.Unlock()
	if len(dropped) > 0 {
		logger.SysLog(fmt.Sprintf("session janitor dropped %d idle sessions", len(dropped)))
	}
}
