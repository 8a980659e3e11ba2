package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"museum-app/internal/domain/museum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCurator answers per artwork title; a gate channel, when present for
// a title, holds that response until released.
type fakeCurator struct {
	mu    sync.Mutex
	calls []struct {
		Title string
		Lang  museum.Language
	}
	gates       map[string]chan struct{}
	err         error
	unavailable bool
}

func newFakeCurator() *fakeCurator {
	return &fakeCurator{gates: make(map[string]chan struct{})}
}

func (f *fakeCurator) GenerateAnalysis(ctx context.Context, title, artist, year string, lang museum.Language) (*museum.AnalysisSections, error) {
	f.mu.Lock()
	f.calls = append(f.calls, struct {
		Title string
		Lang  museum.Language
	}{title, lang})
	gate := f.gates[title]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.unavailable {
		return nil, nil
	}
	return &museum.AnalysisSections{
		FullDescription:   fmt.Sprintf("description of %s (%s)", title, lang),
		TechnicalAnalysis: "technique",
		HistoricalContext: "context",
		Symbolism:         "symbols",
	}, nil
}

func (f *fakeCurator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func loadedStore(t *testing.T, lang museum.Language) *Store {
	t.Helper()
	store := NewStore(&fakeArchive{rows: testRows()}, lang)
	require.NoError(t, store.Load(context.Background()))
	return store
}

func waitForStatus(t *testing.T, v *ViewController, want AnalysisStatus) {
	t.Helper()
	require.Eventually(t, func() bool {
		_, status, _ := v.Detail()
		return status == want
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSelectEntersDetailAndFetchesAnalysis(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	cur := newFakeCurator()
	v := NewViewController(store, cur)

	art, _ := store.Find("1")
	v.Select(art)

	assert.Equal(t, StateDetail, v.State())
	waitForStatus(t, v, AnalysisReady)

	selected, _, analysis := v.Detail()
	require.NotNil(t, selected)
	require.NotNil(t, analysis)
	assert.Equal(t, "The Starry Night", analysis.Title)
	assert.Contains(t, analysis.FullDescription, "The Starry Night")
}

func TestBackClearsSelection(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	v := NewViewController(store, newFakeCurator())

	art, _ := store.Find("1")
	v.Select(art)
	waitForStatus(t, v, AnalysisReady)

	v.Back()

	assert.Equal(t, StateGallery, v.State())
	selected, status, analysis := v.Detail()
	assert.Nil(t, selected)
	assert.Equal(t, AnalysisNone, status)
	assert.Nil(t, analysis)
}

func TestLateAnalysisResponseIsDiscarded(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	cur := newFakeCurator()
	gate := make(chan struct{})
	cur.gates["The Starry Night"] = gate
	v := NewViewController(store, cur)

	// Open A (response held back), leave, then open B.
	artA, _ := store.Find("1")
	v.Select(artA)
	v.Back()
	artB, _ := store.Find("2")
	v.Select(artB)
	waitForStatus(t, v, AnalysisReady)

	// A's response arrives after B is selected: it must not apply to B.
	close(gate)

	require.Eventually(t, func() bool { return cur.callCount() == 2 }, 2*time.Second, 5*time.Millisecond)
	_, status, analysis := v.Detail()
	assert.Equal(t, AnalysisReady, status)
	require.NotNil(t, analysis)
	assert.Equal(t, "Guernica", analysis.Title)
}

func TestLanguageChangeReissuesRequest(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	cur := newFakeCurator()
	v := NewViewController(store, cur)

	art, _ := store.Find("1")
	v.Select(art)
	waitForStatus(t, v, AnalysisReady)

	store.SetLanguage(museum.LangJA)
	v.OnLanguageChanged()
	waitForStatus(t, v, AnalysisReady)

	require.Eventually(t, func() bool { return cur.callCount() == 2 }, 2*time.Second, 5*time.Millisecond)
	selected, _, analysis := v.Detail()
	require.NotNil(t, analysis)
	assert.Equal(t, "星月夜", selected.Title)
	assert.Equal(t, "星月夜", analysis.Title)

	cur.mu.Lock()
	lastLang := cur.calls[len(cur.calls)-1].Lang
	cur.mu.Unlock()
	assert.Equal(t, museum.LangJA, lastLang)
}

func TestLanguageChangeOutsideDetailIsNoop(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	cur := newFakeCurator()
	v := NewViewController(store, cur)

	store.SetLanguage(museum.LangJA)
	v.OnLanguageChanged()

	assert.Equal(t, StateGallery, v.State())
	assert.Equal(t, 0, cur.callCount())
}

func TestCuratorFailureIsNonFatal(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	cur := newFakeCurator()
	cur.err = errors.New("unreachable")
	v := NewViewController(store, cur)

	art, _ := store.Find("1")
	v.Select(art)
	waitForStatus(t, v, AnalysisUnavailable)

	// Base localized data stays displayable.
	selected, _, analysis := v.Detail()
	require.NotNil(t, selected)
	assert.Equal(t, "The Starry Night", selected.Title)
	assert.Nil(t, analysis)
}

func TestUnconfiguredCuratorMeansUnavailable(t *testing.T) {
	store := loadedStore(t, museum.LangEN)
	cur := newFakeCurator()
	cur.unavailable = true
	v := NewViewController(store, cur)

	art, _ := store.Find("1")
	v.Select(art)
	waitForStatus(t, v, AnalysisUnavailable)
}
