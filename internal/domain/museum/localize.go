package museum

// LocalizedArtwork is the display-ready projection of an ArtworkRecord for
// one language. It is recomputed whenever the raw collection or the active
// language changes and is never persisted.
type LocalizedArtwork struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Period      string `json:"period"`
	Year        string `json:"year"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description,omitempty"`

	// Raw is the originating record, kept for read-only access.
	Raw ArtworkRecord `json:"-"`
}

// Resolve projects a bilingual record into one language. The Japanese
// value is used only when the active language is Japanese and the field is
// non-empty; otherwise the English value applies. A missing translation is
// the designed fallback path, not an error.
func Resolve(rec ArtworkRecord, lang Language) LocalizedArtwork {
	art := LocalizedArtwork{
		ID:       rec.ID,
		Title:    fallback(lang, rec.TitleJA, rec.TitleEN),
		Artist:   fallback(lang, rec.ArtistJA, rec.ArtistEN),
		Period:   fallback(lang, rec.PeriodJA, rec.PeriodEN),
		Year:     rec.YearCreated,
		ImageURL: rec.ImageURL,
		Raw:      rec,
	}
	if lang == LangJA && rec.DescriptionJA != "" {
		art.Description = rec.DescriptionJA
	} else {
		art.Description = rec.DescriptionEN
	}
	return art
}

// ResolveAll maps Resolve over a collection, preserving order.
func ResolveAll(recs []ArtworkRecord, lang Language) []LocalizedArtwork {
	out := make([]LocalizedArtwork, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Resolve(rec, lang))
	}
	return out
}

func fallback(lang Language, ja, en string) string {
	if lang == LangJA && ja != "" {
		return ja
	}
	return en
}
