package session

import (
	"context"
	"sync"
	"time"

	"museum-app/internal/chat"
	"museum-app/internal/domain/museum"
	"museum-app/internal/gallery"
	"museum-app/internal/infra/archive"
	"museum-app/internal/infra/curator"
	"museum-app/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultLanguage matches the museum's primary audience; the client can
// switch at any time.
const defaultLanguage = museum.LangJA

// Session is one client's application state: its collection store, its
// gallery/detail view controller and its curator conversation.
type Session struct {
	ID    string
	Store *gallery.Store
	View  *gallery.ViewController
	Chat  *chat.Session

	lastSeen time.Time
}

// SetLanguage swaps the active language across all three controllers:
// the store resets its filter criteria, the detail view re-requests its
// analysis, and the chat re-seeds its greeting if still untouched.
func (s *Session) SetLanguage(lang museum.Language) {
	s.Store.SetLanguage(lang)
	s.View.OnLanguageChanged()
	s.Chat.SetLanguage(lang)
}

// Manager keeps the live sessions and expires idle ones.
type Manager struct {
	archive archive.Archive
	curator *curator.Client
	ttl     time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(a archive.Archive, c *curator.Client, ttl time.Duration) *Manager {
	return &Manager{
		archive:  a,
		curator:  c,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Get returns a live session and refreshes its idle timer.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

// Create builds a fresh session and kicks off its one collection load.
// The load runs in the background; the store's loading flag is what the
// client observes meanwhile.
func (m *Manager) Create() *Session {
	store := gallery.NewStore(m.archive, defaultLanguage)
	s := &Session{
		ID:       uuid.NewString(),
		Store:    store,
		View:     gallery.NewViewController(store, m.curator),
		Chat:     chat.NewSession(m.curator, defaultLanguage),
		lastSeen: time.Now(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Load(ctx); err != nil {
			logging.L().Error("initial collection load failed",
				zap.String("session_id", s.ID), zap.Error(err))
		}
	}()

	return s
}

// Sweep drops sessions idle longer than the TTL until ctx is done.
func (m *Manager) Sweep(ctx context.Context) {
	ticker := time.NewTicker(m.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-m.ttl)
			m.mu.Lock()
			for id, s := range m.sessions {
				if s.lastSeen.Before(cutoff) {
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()
		}
	}
}
