package gallery

import (
	"context"
	"sync"
	"time"

	"museum-app/internal/domain/museum"
	"museum-app/internal/logging"

	"go.uber.org/zap"
)

type State string

const (
	StateGallery State = "gallery"
	StateDetail  State = "detail"
)

// AnalysisStatus is the detail view's enrichment sub-state.
type AnalysisStatus string

const (
	AnalysisNone        AnalysisStatus = ""
	AnalysisPending     AnalysisStatus = "pending"
	AnalysisReady       AnalysisStatus = "ready"
	AnalysisUnavailable AnalysisStatus = "unavailable"
)

const analysisTimeout = 60 * time.Second

// Curator produces the four-section analysis. A (nil, nil) return means
// the collaborator is unconfigured, which is "unavailable", not an error.
type Curator interface {
	GenerateAnalysis(ctx context.Context, title, artist, year string, lang museum.Language) (*museum.AnalysisSections, error)
}

// analysisKey tags every enrichment request with the (artwork, language)
// pair it was issued for. A response is applied only if the key still
// matches current state at resolution time; otherwise it is discarded.
type analysisKey struct {
	artworkID string
	lang      museum.Language
}

// ViewController orchestrates navigation between the gallery grid and the
// detail view, and owns the analysis lifecycle for the selected artwork.
type ViewController struct {
	store   *Store
	curator Curator

	mu       sync.Mutex
	state    State
	selected *museum.LocalizedArtwork
	status   AnalysisStatus
	analysis *museum.ArtworkAnalysis
	current  analysisKey
}

func NewViewController(store *Store, cur Curator) *ViewController {
	return &ViewController{store: store, curator: cur, state: StateGallery}
}

// Select enters the detail view for an artwork and asynchronously requests
// its analysis in the active language. Any prior analysis is discarded
// immediately so nothing stale is displayed.
func (v *ViewController) Select(art museum.LocalizedArtwork) {
	lang := v.store.Language()
	key := analysisKey{artworkID: art.ID, lang: lang}

	v.mu.Lock()
	v.state = StateDetail
	v.selected = &art
	v.status = AnalysisPending
	v.analysis = nil
	v.current = key
	v.mu.Unlock()

	go v.fetch(art, lang, key)
}

// Back returns to the gallery, clearing the selection. An in-flight
// analysis response will no longer match and gets dropped.
func (v *ViewController) Back() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = StateGallery
	v.selected = nil
	v.status = AnalysisNone
	v.analysis = nil
	v.current = analysisKey{}
}

// OnLanguageChanged re-localizes the selection and re-issues the analysis
// request when the detail view is open. Outside the detail view it is a
// no-op.
func (v *ViewController) OnLanguageChanged() {
	v.mu.Lock()
	if v.state != StateDetail || v.selected == nil {
		v.mu.Unlock()
		return
	}
	id := v.selected.ID
	v.mu.Unlock()

	art, ok := v.store.Find(id)
	if !ok {
		v.Back()
		return
	}
	v.Select(art)
}

func (v *ViewController) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Detail snapshots the current detail view: the selected artwork, the
// enrichment sub-state, and the analysis when ready. Selected is nil in
// gallery state.
func (v *ViewController) Detail() (selected *museum.LocalizedArtwork, status AnalysisStatus, analysis *museum.ArtworkAnalysis) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.selected != nil {
		art := *v.selected
		selected = &art
	}
	if v.analysis != nil {
		a := *v.analysis
		analysis = &a
	}
	return selected, v.status, analysis
}

// fetch runs outside any request lifecycle: the client observes the
// pending flag and picks the result up later.
func (v *ViewController) fetch(art museum.LocalizedArtwork, lang museum.Language, key analysisKey) {
	ctx, cancel := context.WithTimeout(context.Background(), analysisTimeout)
	defer cancel()

	sections, err := v.curator.GenerateAnalysis(ctx, art.Title, art.Artist, art.Year, lang)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.current != key {
		// Stale: the user navigated away or switched language.
		return
	}
	if err != nil {
		logging.L().Warn("artwork analysis failed",
			zap.String("artwork_id", art.ID), zap.Error(err))
		v.status = AnalysisUnavailable
		return
	}
	if sections == nil {
		v.status = AnalysisUnavailable
		return
	}
	v.status = AnalysisReady
	v.analysis = &museum.ArtworkAnalysis{
		LocalizedArtwork: art,
		AnalysisSections: *sections,
	}
}
