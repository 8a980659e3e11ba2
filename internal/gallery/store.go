package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"museum-app/internal/domain/museum"
	"museum-app/internal/infra/archive"
	"museum-app/internal/logging"

	"go.uber.org/zap"
)

// ErrLoad marks a failed collection fetch. The previous collection, if
// any, stays untouched.
var ErrLoad = errors.New("collection load failed")

// Store owns the raw artwork collection, the active language and the
// filter criteria. Those are the only pieces of state shared across
// components, and they are mutated only through the operations below.
type Store struct {
	archive archive.Archive

	mu       sync.Mutex
	rows     []museum.ArtworkRecord
	lang     museum.Language
	criteria museum.Criteria
	loading  bool
}

func NewStore(a archive.Archive, lang museum.Language) *Store {
	return &Store{archive: a, lang: lang}
}

// Load replaces the entire collection from the archive. The loading flag
// transitions false→true→false around the attempt. Overlapping loads are
// not guarded against: the later response wins.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	rows, err := s.archive.ListArtworks(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		logging.L().Error("failed to load collection", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	s.rows = rows
	return nil
}

// Prepend inserts a freshly submitted, server-confirmed record at the head
// of the collection without re-fetching.
func (s *Store) Prepend(rec museum.ArtworkRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append([]museum.ArtworkRecord{rec}, s.rows...)
}

// SetLanguage swaps the active language and always resets the filter
// criteria: facet values are language-dependent display strings, so a
// facet chosen in one language has no matching value in the other.
func (s *Store) SetLanguage(lang museum.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lang = lang
	s.criteria = museum.Criteria{}
}

func (s *Store) Language() museum.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

func (s *Store) SetCriteria(c museum.Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = c
}

func (s *Store) Criteria() museum.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Localized derives the display projection of the whole collection for
// the active language.
func (s *Store) Localized() []museum.LocalizedArtwork {
	s.mu.Lock()
	rows, lang := s.rows, s.lang
	s.mu.Unlock()
	return museum.ResolveAll(rows, lang)
}

// Filtered applies the current criteria to the localized collection.
func (s *Store) Filtered() []museum.LocalizedArtwork {
	s.mu.Lock()
	rows, lang, criteria := s.rows, s.lang, s.criteria
	s.mu.Unlock()
	return museum.Filter(museum.ResolveAll(rows, lang), criteria)
}

// Facets returns the sorted distinct period and artist values of the
// current localized collection.
func (s *Store) Facets() (periods, artists []string) {
	s.mu.Lock()
	rows, lang := s.rows, s.lang
	s.mu.Unlock()
	localized := museum.ResolveAll(rows, lang)
	return museum.Periods(localized, lang), museum.Artists(localized, lang)
}

// Find resolves one artwork by id in the active language.
func (s *Store) Find(id string) (museum.LocalizedArtwork, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.rows {
		if rec.ID == id {
			return museum.Resolve(rec, s.lang), true
		}
	}
	return museum.LocalizedArtwork{}, false
}
