package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"museum-app/internal/domain/museum"
	"museum-app/internal/logging"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Postgres is the live archive: rows in the artworks table, blobs on disk
// under uploadDir, served back at publicBase + "/uploads/<name>".
type Postgres struct {
	db         *gorm.DB
	uploadDir  string
	publicBase string
}

func NewPostgres(db *gorm.DB, uploadDir, publicBase string) *Postgres {
	return &Postgres{db: db, uploadDir: uploadDir, publicBase: publicBase}
}

func (p *Postgres) ListArtworks(ctx context.Context) ([]museum.ArtworkRecord, error) {
	var rows []museum.ArtworkRecord
	err := p.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return rows, nil
}

func (p *Postgres) UploadArtwork(ctx context.Context, image []byte, filename string, meta museum.UploadMetadata) (*museum.ArtworkRecord, error) {
	name := blobName(filename)

	if err := os.MkdirAll(p.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("upload artwork: %w", err)
	}
	if err := os.WriteFile(filepath.Join(p.uploadDir, name), image, 0o644); err != nil {
		return nil, fmt.Errorf("upload artwork: %w", err)
	}

	rec := museum.ArtworkRecord{
		ImageURL:      p.publicBase + "/uploads/" + name,
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
	if err := p.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert artwork: %w", err)
	}
	return &rec, nil
}

func (p *Postgres) IncrementViewCount(ctx context.Context, id string) {
	err := p.db.WithContext(ctx).
		Model(&museum.ArtworkRecord{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	if err != nil {
		logging.L().Warn("failed to increment view count", zap.String("artwork_id", id), zap.Error(err))
	}
}

func (p *Postgres) ListTranslations(ctx context.Context) ([]museum.TranslationRow, error) {
	var rows []museum.TranslationRow
	if err := p.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return rows, nil
}

// blobName prefixes the original filename with the current unix
// millisecond timestamp, matching the storage bucket naming scheme.
func blobName(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
}
