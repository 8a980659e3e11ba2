package museum

import "time"

type Language string

const (
	LangEN Language = "en"
	LangJA Language = "ja"
)

// ParseLanguage accepts the two supported language codes.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangEN:
		return LangEN, true
	case LangJA:
		return LangJA, true
	}
	return "", false
}

// ArtworkRecord is the raw archive row. English fields are mandatory,
// Japanese fields are optional; an empty string means "no translation".
// Records are never mutated after creation (view-count increments happen
// server side, best effort).
type ArtworkRecord struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ImageURL string `gorm:"not null" json:"image_url"`

	TitleEN string `gorm:"not null" json:"title_en"`
	TitleJA string `json:"title_ja,omitempty"`

	ArtistEN string `gorm:"not null" json:"artist_en"`
	ArtistJA string `json:"artist_ja,omitempty"`

	PeriodEN string `json:"period_en"`
	PeriodJA string `json:"period_ja,omitempty"`

	YearCreated string `json:"year_created"`

	DescriptionEN string `json:"description_en,omitempty"`
	DescriptionJA string `json:"description_ja,omitempty"`

	IsPublic  bool `gorm:"not null;default:true" json:"is_public"`
	ViewCount int  `gorm:"not null;default:0" json:"view_count"`
}

func (ArtworkRecord) TableName() string { return "artworks" }

// UploadMetadata carries the submission form fields for a new record.
// TitleEN and ArtistEN are the only mandatory text fields.
type UploadMetadata struct {
	TitleEN       string `json:"title_en"`
	TitleJA       string `json:"title_ja"`
	ArtistEN      string `json:"artist_en"`
	ArtistJA      string `json:"artist_ja"`
	YearCreated   string `json:"year_created"`
	PeriodEN      string `json:"period_en"`
	PeriodJA      string `json:"period_ja"`
	DescriptionEN string `json:"description_en"`
	DescriptionJA string `json:"description_ja"`
}
