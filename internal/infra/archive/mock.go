package archive

import (
	"context"
	"sync"
	"time"

	"museum-app/internal/domain/museum"
	"museum-app/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Mock is the credential-free archive: an in-memory dataset seeded with a
// handful of masterpieces, plus a simulated upload path that keeps image
// blobs in memory and hands out ephemeral /uploads URLs. It keeps the
// whole application functional without a live backend.
type Mock struct {
	mu    sync.Mutex
	rows  []museum.ArtworkRecord
	blobs map[string][]byte
}

func NewMock() *Mock {
	return &Mock{
		rows:  seedArtworks(),
		blobs: make(map[string][]byte),
	}
}

func (m *Mock) ListArtworks(ctx context.Context) ([]museum.ArtworkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]museum.ArtworkRecord, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *Mock) UploadArtwork(ctx context.Context, image []byte, filename string, meta museum.UploadMetadata) (*museum.ArtworkRecord, error) {
	name := blobName(filename)

	rec := museum.ArtworkRecord{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now(),
		ImageURL:      "/uploads/" + name,
		TitleEN:       meta.TitleEN,
		TitleJA:       meta.TitleJA,
		ArtistEN:      meta.ArtistEN,
		ArtistJA:      meta.ArtistJA,
		PeriodEN:      meta.PeriodEN,
		PeriodJA:      meta.PeriodJA,
		YearCreated:   meta.YearCreated,
		DescriptionEN: meta.DescriptionEN,
		DescriptionJA: meta.DescriptionJA,
		IsPublic:      true,
	}

	m.mu.Lock()
	m.blobs[name] = image
	m.rows = append([]museum.ArtworkRecord{rec}, m.rows...)
	m.mu.Unlock()

	logging.L().Info("mock archive accepted artwork", zap.String("title", rec.TitleEN))
	return &rec, nil
}

func (m *Mock) IncrementViewCount(ctx context.Context, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].ViewCount++
			return
		}
	}
}

func (m *Mock) ListTranslations(ctx context.Context) ([]museum.TranslationRow, error) {
	return nil, nil
}

// Blob returns an uploaded image by blob name, for serving /uploads in
// mock mode.
func (m *Mock) Blob(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[name]
	return b, ok
}

func seedArtworks() []museum.ArtworkRecord {
	return []museum.ArtworkRecord{
		{
			ID:       "1",
			ImageURL: "https://picsum.photos/seed/nightwatch/600/400",
			TitleEN:  "The Night Watch", TitleJA: "夜警",
			ArtistEN: "Rembrandt van Rijn", ArtistJA: "レンブラント・ファン・レイン",
			YearCreated: "1642",
			PeriodEN:    "Dutch Golden Age", PeriodJA: "オランダ黄金時代",
			IsPublic: true,
		},
		{
			ID:       "2",
			ImageURL: "https://picsum.photos/seed/vermeer/600/700",
			TitleEN:  "Girl with a Pearl Earring", TitleJA: "真珠の耳飾りの少女",
			ArtistEN: "Johannes Vermeer", ArtistJA: "ヨハネス・フェルメール",
			YearCreated: "1665",
			PeriodEN:    "Dutch Golden Age", PeriodJA: "オランダ黄金時代",
			IsPublic: true,
		},
		{
			ID:       "3",
			ImageURL: "https://picsum.photos/seed/starry/800/600",
			TitleEN:  "The Starry Night", TitleJA: "星月夜",
			ArtistEN: "Vincent van Gogh", ArtistJA: "フィンセント・ファン・ゴッホ",
			YearCreated: "1889",
			PeriodEN:    "Post-Impressionism", PeriodJA: "ポスト印象派",
			IsPublic: true,
		},
		{
			ID:       "4",
			ImageURL: "https://picsum.photos/seed/venus/800/500",
			TitleEN:  "The Birth of Venus", TitleJA: "ヴィーナスの誕生",
			ArtistEN: "Sandro Botticelli", ArtistJA: "サンドロ・ボッティチェッリ",
			YearCreated: "1486",
			PeriodEN:    "Early Renaissance", PeriodJA: "初期ルネサンス",
			IsPublic: true,
		},
		{
			ID:       "5",
			ImageURL: "https://picsum.photos/seed/guernica/900/400",
			TitleEN:  "Guernica", TitleJA: "ゲルニカ",
			ArtistEN: "Pablo Picasso", ArtistJA: "パブロ・ピカソ",
			YearCreated: "1937",
			PeriodEN:    "Cubism / Surrealism", PeriodJA: "キュビズム / シュルレアリスム",
			IsPublic: true,
		},
		{
			ID:       "6",
			ImageURL: "https://picsum.photos/seed/klimt/500/500",
			TitleEN:  "The Kiss", TitleJA: "接吻",
			ArtistEN: "Gustav Klimt", ArtistJA: "グスタフ・クリムト",
			YearCreated: "1908",
			PeriodEN:    "Art Nouveau", PeriodJA: "アール・ヌーヴォー",
			IsPublic: true,
		},
		{
			ID:       "7",
			ImageURL: "https://picsum.photos/seed/fog/500/700",
			TitleEN:  "Wanderer above the Sea of Fog", TitleJA: "雲海の上の旅人",
			ArtistEN: "Caspar David Friedrich", ArtistJA: "カスパー・ダーヴィト・フリードリヒ",
			YearCreated: "1818",
			PeriodEN:    "Romanticism", PeriodJA: "ロマン主義",
			IsPublic: true,
		},
		{
			ID:       "8",
			ImageURL: "https://picsum.photos/seed/meninas/600/700",
			TitleEN:  "Las Meninas", TitleJA: "ラス・メニーナス",
			ArtistEN: "Diego Velázquez", ArtistJA: "ディエゴ・ベラスケス",
			YearCreated: "1656",
			PeriodEN:    "Baroque", PeriodJA: "バロック",
			IsPublic: true,
		},
	}
}
