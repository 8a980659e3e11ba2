package archive

import (
	"context"
	"testing"

	"museum-app/internal/domain/museum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockSeededCollection(t *testing.T) {
	m := NewMock()

	rows, err := m.ListArtworks(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 8)

	assert.Equal(t, "The Night Watch", rows[0].TitleEN)
	assert.Equal(t, "夜警", rows[0].TitleJA)
	assert.Equal(t, "Las Meninas", rows[7].TitleEN)
	for _, r := range rows {
		assert.NotEmpty(t, r.TitleEN)
		assert.NotEmpty(t, r.ArtistEN)
		assert.NotEmpty(t, r.ImageURL)
	}
}

func TestMockListReturnsCopy(t *testing.T) {
	m := NewMock()

	rows, err := m.ListArtworks(context.Background())
	require.NoError(t, err)
	rows[0].TitleEN = "mutated"

	fresh, err := m.ListArtworks(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "The Night Watch", fresh[0].TitleEN)
}

func TestMockUploadPrependsRecord(t *testing.T) {
	m := NewMock()
	meta := museum.UploadMetadata{
		TitleEN:     "American Gothic",
		ArtistEN:    "Grant Wood",
		YearCreated: "1930",
		PeriodEN:    "Regionalism",
	}

	rec, err := m.UploadArtwork(context.Background(), []byte("fake image"), "gothic.jpg", meta)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.True(t, rec.IsPublic)
	assert.Contains(t, rec.ImageURL, "gothic.jpg")

	rows, err := m.ListArtworks(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 9)
	assert.Equal(t, "American Gothic", rows[0].TitleEN)

	// The uploaded blob is retrievable by its name.
	name := rec.ImageURL[len("/uploads/"):]
	blob, ok := m.Blob(name)
	require.True(t, ok)
	assert.Equal(t, []byte("fake image"), blob)
}

func TestMockIncrementViewCount(t *testing.T) {
	m := NewMock()

	m.IncrementViewCount(context.Background(), "3")
	m.IncrementViewCount(context.Background(), "3")
	m.IncrementViewCount(context.Background(), "does-not-exist") // swallowed

	rows, err := m.ListArtworks(context.Background())
	require.NoError(t, err)
	for _, r := range rows {
		if r.ID == "3" {
			assert.Equal(t, 2, r.ViewCount)
		}
	}
}

func TestBlobNameKeepsOriginalFilename(t *testing.T) {
	name := blobName("/tmp/some dir/starry.png")
	assert.Regexp(t, `^\d+-starry\.png$`, name)
}
