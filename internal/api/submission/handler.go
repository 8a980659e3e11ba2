package submission

import (
	"io"
	"net/http"

	"museum-app/internal/app/http/middleware"
	"museum-app/internal/domain/museum"
	"museum-app/internal/infra/archive"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

const maxImageBytes = 10 << 20

// ------------------------------
// POST /api/artworks  (multipart)
// ------------------------------
// Fails fast when the image or either mandatory English field is missing:
// no archive call is made, so the client keeps its form state. On success
// the confirmed record is prepended to the session's collection.
func SubmitArtwork(ar archive.Archive) gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()
	clean := func(c *gin.Context, field string) string {
		return policy.Sanitize(c.PostForm(field))
	}

	return func(c *gin.Context) {
		sess, ok := middleware.MustSession(c)
		if !ok {
			return
		}

		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
			return
		}
		if file.Size > maxImageBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image too large"})
			return
		}

		meta := museum.UploadMetadata{
			TitleEN:       clean(c, "title_en"),
			TitleJA:       clean(c, "title_ja"),
			ArtistEN:      clean(c, "artist_en"),
			ArtistJA:      clean(c, "artist_ja"),
			YearCreated:   clean(c, "year_created"),
			PeriodEN:      clean(c, "period_en"),
			PeriodJA:      clean(c, "period_ja"),
			DescriptionEN: clean(c, "description_en"),
			DescriptionJA: clean(c, "description_ja"),
		}
		if meta.TitleEN == "" || meta.ArtistEN == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "English title and artist are required"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
			return
		}
		defer src.Close()
		image, err := io.ReadAll(src)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
			return
		}

		rec, err := ar.UploadArtwork(c.Request.Context(), image, file.Filename, meta)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to archive artwork. Please try again."})
			return
		}

		sess.Store.Prepend(*rec)
		c.JSON(http.StatusCreated, rec)
	}
}
