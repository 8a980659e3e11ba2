package chat

import (
	"context"
	"strings"
	"sync"

	"museum-app/internal/domain/museum"
	"museum-app/internal/logging"

	"go.uber.org/zap"
)

// Curator relays the transcript plus a new message to the AI collaborator.
type Curator interface {
	Chat(ctx context.Context, history []museum.ChatTurn, message string, current *museum.LocalizedArtwork, lang museum.Language) (string, error)
}

// Session maintains one linear conversation with the AI curator. The
// transcript is append-only and always holds at least the welcome turn.
// Requests are strictly serialized: a submit while one is in flight is a
// no-op, so turns land in send order with no interleaving.
type Session struct {
	curator Curator

	mu       sync.Mutex
	lang     museum.Language
	turns    []museum.ChatTurn
	thinking bool
}

func NewSession(cur Curator, lang museum.Language) *Session {
	return &Session{
		curator: cur,
		lang:    lang,
		turns:   []museum.ChatTurn{welcomeTurn(lang)},
	}
}

func welcomeTurn(lang museum.Language) museum.ChatTurn {
	return museum.ChatTurn{Role: museum.RoleAssistant, Text: museum.WelcomeMessage(lang)}
}

// Transcript returns a copy of the conversation so far.
func (s *Session) Transcript() []museum.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]museum.ChatTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) Thinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.thinking
}

// SetLanguage re-seeds the welcome turn only while the transcript is still
// empty or welcome-only, so a language toggle never wipes a conversation
// in progress but a fresh greeting is always localized.
func (s *Session) SetLanguage(lang museum.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	if len(s.turns) == 0 ||
		(len(s.turns) == 1 && s.turns[0].Role == museum.RoleAssistant) {
		s.turns = []museum.ChatTurn{welcomeTurn(lang)}
	}
}

// Submit appends a user turn and relays the conversation to the curator.
// Blank input or an in-flight request makes it a no-op (returns false).
// On collaborator failure a fixed localized apology is appended instead of
// any raw error; the thinking flag is cleared in every outcome.
func (s *Session) Submit(ctx context.Context, text string, current *museum.LocalizedArtwork) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	s.mu.Lock()
	if s.thinking {
		s.mu.Unlock()
		return false
	}
	history := make([]museum.ChatTurn, len(s.turns))
	copy(history, s.turns)
	lang := s.lang
	s.turns = append(s.turns, museum.ChatTurn{Role: museum.RoleUser, Text: text})
	s.thinking = true
	s.mu.Unlock()

	reply, err := s.curator.Chat(ctx, history, text, current, lang)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.thinking = false
	if err != nil {
		logging.L().Warn("curator chat failed", zap.Error(err))
		s.turns = append(s.turns, museum.ChatTurn{Role: museum.RoleAssistant, Text: museum.ChatApology(lang)})
		return true
	}
	if reply != "" {
		s.turns = append(s.turns, museum.ChatTurn{Role: museum.RoleAssistant, Text: reply})
	}
	return true
}
