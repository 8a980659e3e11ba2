package gallery

import (
	"context"
	"net/http"

	"museum-app/internal/app/http/middleware"
	"museum-app/internal/domain/museum"
	"museum-app/internal/infra/archive"

	"github.com/gin-gonic/gin"
)

// ------------------------------
// GET /api/collection
// ------------------------------
func GetCollection(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	periods, artists := sess.Store.Facets()
	c.JSON(http.StatusOK, CollectionDTO{
		Loading:  sess.Store.Loading(),
		Language: sess.Store.Language(),
		Criteria: sess.Store.Criteria(),
		Artworks: sess.Store.Filtered(),
		Facets:   FacetsDTO{Periods: periods, Artists: artists},
	})
}

// ------------------------------
// POST /api/language
// ------------------------------
func SetLanguage(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	var req SetLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lang, ok := museum.ParseLanguage(req.Language)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}

	sess.SetLanguage(lang)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "language": lang})
}

// ------------------------------
// POST /api/filter
// ------------------------------
func SetFilter(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	var req SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess.Store.SetCriteria(museum.Criteria{
		Search: req.Search,
		Period: req.Period,
		Artist: req.Artist,
	})
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ------------------------------
// POST /api/artworks/:id/open
// ------------------------------
func OpenArtwork(ar archive.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.MustSession(c)
		if !ok {
			return
		}

		id := c.Param("id")
		art, found := sess.Store.Find(id)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found"})
			return
		}

		sess.View.Select(art)
		go ar.IncrementViewCount(context.Background(), id)

		c.JSON(http.StatusOK, gin.H{"status": "ok", "state": sess.View.State()})
	}
}

// ------------------------------
// GET /api/detail
// ------------------------------
func GetDetail(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	selected, status, analysis := sess.View.Detail()
	c.JSON(http.StatusOK, DetailDTO{
		State:          sess.View.State(),
		Artwork:        selected,
		AnalysisStatus: status,
		Analysis:       analysis,
	})
}

// ------------------------------
// POST /api/gallery
// ------------------------------
func BackToGallery(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	sess.View.Back()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "state": sess.View.State()})
}
