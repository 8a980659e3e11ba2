package museum

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criteria is the composite gallery filter: a free-text search over title
// and artist plus optional exact-match facets. Facet values are localized
// display strings, so criteria are reset whenever the language switches.
type Criteria struct {
	Search string `json:"search"`
	Period string `json:"period,omitempty"`
	Artist string `json:"artist,omitempty"`
}

func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Period == "" && c.Artist == ""
}

// Matches reports whether a localized artwork passes the filter. The text
// match is a case-insensitive substring test against title or artist; an
// empty search matches everything. Facets require exact equality. All
// conditions are AND-ed.
func (c Criteria) Matches(art LocalizedArtwork) bool {
	if c.Search != "" {
		q := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(art.Title), q) &&
			!strings.Contains(strings.ToLower(art.Artist), q) {
			return false
		}
	}
	if c.Period != "" && art.Period != c.Period {
		return false
	}
	if c.Artist != "" && art.Artist != c.Artist {
		return false
	}
	return true
}

// Filter returns the artworks matching the criteria, preserving order.
func Filter(arts []LocalizedArtwork, c Criteria) []LocalizedArtwork {
	out := make([]LocalizedArtwork, 0, len(arts))
	for _, art := range arts {
		if c.Matches(art) {
			out = append(out, art)
		}
	}
	return out
}

// Periods derives the sorted set of distinct non-empty period values from
// the localized collection, for presentation as facet choices.
func Periods(arts []LocalizedArtwork, lang Language) []string {
	return distinctSorted(arts, lang, func(a LocalizedArtwork) string { return a.Period })
}

// Artists derives the sorted set of distinct non-empty artist values.
func Artists(arts []LocalizedArtwork, lang Language) []string {
	return distinctSorted(arts, lang, func(a LocalizedArtwork) string { return a.Artist })
}

func distinctSorted(arts []LocalizedArtwork, lang Language, field func(LocalizedArtwork) string) []string {
	seen := make(map[string]struct{}, len(arts))
	out := make([]string, 0, len(arts))
	for _, art := range arts {
		v := field(art)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	collator(lang).SortStrings(out)
	return out
}

func collator(lang Language) *collate.Collator {
	if lang == LangJA {
		return collate.New(language.Japanese)
	}
	return collate.New(language.English)
}
