package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"museum-app/internal/domain/museum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCurator struct {
	mu      sync.Mutex
	calls   int
	history []museum.ChatTurn
	current *museum.LocalizedArtwork
	reply   string
	err     error
	gate    chan struct{}
}

func (f *fakeCurator) Chat(ctx context.Context, history []museum.ChatTurn, message string, current *museum.LocalizedArtwork, lang museum.Language) (string, error) {
	f.mu.Lock()
	f.calls++
	f.history = history
	f.current = current
	gate := f.gate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return f.reply, f.err
}

func (f *fakeCurator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestNewSessionSeedsWelcomeTurn(t *testing.T) {
	s := NewSession(&fakeCurator{}, museum.LangJA)

	turns := s.Transcript()
	require.Len(t, turns, 1)
	assert.Equal(t, museum.RoleAssistant, turns[0].Role)
	assert.Equal(t, museum.WelcomeMessage(museum.LangJA), turns[0].Text)
}

func TestSubmitAppendsBothTurns(t *testing.T) {
	cur := &fakeCurator{reply: "Rembrandt painted it in 1642."}
	s := NewSession(cur, museum.LangEN)

	ok := s.Submit(context.Background(), "Who painted The Night Watch?", nil)

	require.True(t, ok)
	turns := s.Transcript()
	require.Len(t, turns, 3)
	assert.Equal(t, museum.RoleUser, turns[1].Role)
	assert.Equal(t, "Who painted The Night Watch?", turns[1].Text)
	assert.Equal(t, museum.RoleAssistant, turns[2].Role)
	assert.Equal(t, "Rembrandt painted it in 1642.", turns[2].Text)
	assert.False(t, s.Thinking())
}

func TestSubmitSendsPriorTranscriptOnly(t *testing.T) {
	cur := &fakeCurator{reply: "Indeed."}
	s := NewSession(cur, museum.LangEN)

	s.Submit(context.Background(), "Hello", nil)

	// The new message travels separately; history holds the turns before it.
	require.Len(t, cur.history, 1)
	assert.Equal(t, museum.RoleAssistant, cur.history[0].Role)
}

func TestSubmitBlankIsNoop(t *testing.T) {
	cur := &fakeCurator{reply: "never"}
	s := NewSession(cur, museum.LangEN)

	assert.False(t, s.Submit(context.Background(), "", nil))
	assert.False(t, s.Submit(context.Background(), "   \t\n", nil))
	assert.Len(t, s.Transcript(), 1)
	assert.Equal(t, 0, cur.callCount())
}

func TestSubmitWhileThinkingIsNoop(t *testing.T) {
	gate := make(chan struct{})
	cur := &fakeCurator{reply: "done", gate: gate}
	s := NewSession(cur, museum.LangEN)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Submit(context.Background(), "first", nil)
	}()

	require.Eventually(t, s.Thinking, 2*time.Second, 5*time.Millisecond)
	lenBefore := len(s.Transcript())

	assert.False(t, s.Submit(context.Background(), "second", nil), "submit during flight must be a no-op")
	assert.Len(t, s.Transcript(), lenBefore)
	assert.Equal(t, 1, cur.callCount())

	close(gate)
	wg.Wait()
	assert.False(t, s.Thinking())
}

func TestSubmitFailureAppendsLocalizedApology(t *testing.T) {
	cur := &fakeCurator{err: errors.New("curator offline")}
	s := NewSession(cur, museum.LangJA)

	require.True(t, s.Submit(context.Background(), "こんにちは", nil))

	turns := s.Transcript()
	require.Len(t, turns, 3)
	assert.Equal(t, museum.RoleAssistant, turns[2].Role)
	assert.Equal(t, museum.ChatApology(museum.LangJA), turns[2].Text)
	assert.False(t, s.Thinking(), "thinking must never dangle")
}

func TestSubmitEmptyReplyAppendsNothing(t *testing.T) {
	cur := &fakeCurator{reply: ""}
	s := NewSession(cur, museum.LangEN)

	require.True(t, s.Submit(context.Background(), "hello", nil))

	turns := s.Transcript()
	require.Len(t, turns, 2, "only the user turn is appended")
	assert.False(t, s.Thinking())
}

func TestSubmitPassesCurrentArtwork(t *testing.T) {
	cur := &fakeCurator{reply: "About that painting..."}
	s := NewSession(cur, museum.LangEN)
	art := &museum.LocalizedArtwork{ID: "1", Title: "Guernica", Artist: "Pablo Picasso"}

	s.Submit(context.Background(), "Tell me more", art)

	require.NotNil(t, cur.current)
	assert.Equal(t, "Guernica", cur.current.Title)
}

func TestSetLanguageReseedsWelcomeOnlyTranscript(t *testing.T) {
	s := NewSession(&fakeCurator{}, museum.LangJA)

	s.SetLanguage(museum.LangEN)

	turns := s.Transcript()
	require.Len(t, turns, 1)
	assert.Equal(t, museum.WelcomeMessage(museum.LangEN), turns[0].Text)
}

func TestSetLanguageKeepsConversationInProgress(t *testing.T) {
	cur := &fakeCurator{reply: "An excellent question."}
	s := NewSession(cur, museum.LangEN)
	s.Submit(context.Background(), "What is chiaroscuro?", nil)

	before := s.Transcript()
	s.SetLanguage(museum.LangJA)

	assert.Equal(t, before, s.Transcript(), "language toggle must not wipe an active conversation")
}
