package museum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCollection() []LocalizedArtwork {
	return []LocalizedArtwork{
		{ID: "1", Title: "The Starry Night", Artist: "Vincent van Gogh", Period: "Post-Impressionism"},
		{ID: "2", Title: "Guernica", Artist: "Pablo Picasso", Period: "Cubism / Surrealism"},
		{ID: "3", Title: "The Kiss", Artist: "Gustav Klimt", Period: "Art Nouveau"},
	}
}

func TestNeutralCriteriaMatchesEverything(t *testing.T) {
	c := Criteria{}
	for _, art := range sampleCollection() {
		assert.True(t, c.Matches(art), art.Title)
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"guern", []string{"2"}},
		{"GUERN", []string{"2"}},
		{"van gogh", []string{"1"}},
		{"the", []string{"1", "3"}},
		{"nothing matches this", nil},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := Filter(sampleCollection(), Criteria{Search: tt.search})
			ids := make([]string, 0, len(got))
			for _, art := range got {
				ids = append(ids, art.ID)
			}
			if tt.want == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.want, ids)
			}
		})
	}
}

func TestFacetsRequireExactMatch(t *testing.T) {
	got := Filter(sampleCollection(), Criteria{Period: "Art Nouveau"})
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = Filter(sampleCollection(), Criteria{Artist: "Pablo Picasso"})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// A facet value absent from the collection yields an empty result.
	assert.Empty(t, Filter(sampleCollection(), Criteria{Period: "Baroque"}))
	// Facet prefixes do not count.
	assert.Empty(t, Filter(sampleCollection(), Criteria{Period: "Art"}))
}

func TestConditionsAreANDed(t *testing.T) {
	c := Criteria{Search: "guern", Artist: "Gustav Klimt"}
	assert.Empty(t, Filter(sampleCollection(), c))

	c = Criteria{Search: "guern", Artist: "Pablo Picasso"}
	assert.Len(t, Filter(sampleCollection(), c), 1)
}

func TestFacetDerivationDistinctSortedNonEmpty(t *testing.T) {
	arts := []LocalizedArtwork{
		{Artist: "Vermeer", Period: "Dutch Golden Age"},
		{Artist: "Rembrandt", Period: "Dutch Golden Age"},
		{Artist: "Rembrandt", Period: ""},
		{Artist: "", Period: "Baroque"},
	}

	assert.Equal(t, []string{"Baroque", "Dutch Golden Age"}, Periods(arts, LangEN))
	assert.Equal(t, []string{"Rembrandt", "Vermeer"}, Artists(arts, LangEN))
}

func TestFacetDerivationJapaneseCollation(t *testing.T) {
	arts := []LocalizedArtwork{
		{Period: "ロマン主義"},
		{Period: "バロック"},
		{Period: "キュビズム"},
	}
	assert.Equal(t, []string{"キュビズム", "バロック", "ロマン主義"}, Periods(arts, LangJA))
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Search: "x"}.IsZero())
	assert.False(t, Criteria{Period: "Baroque"}.IsZero())
}
