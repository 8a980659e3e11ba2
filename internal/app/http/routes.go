package routes

import (
	chatapi "museum-app/internal/api/chat"
	galleryapi "museum-app/internal/api/gallery"
	"museum-app/internal/api/submission"
	textsapi "museum-app/internal/api/texts"
	"museum-app/internal/app/http/middleware"
	"museum-app/internal/app/session"
	"museum-app/internal/infra/archive"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, sessions *session.Manager, ar archive.Archive, uploadDir string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Blob serving: disk in live mode, in-memory in mock mode.
	if mock, ok := ar.(*archive.Mock); ok {
		r.GET("/uploads/:name", func(c *gin.Context) {
			blob, found := mock.Blob(c.Param("name"))
			if !found {
				c.JSON(404, gin.H{"error": "Not found"})
				return
			}
			c.Data(200, "application/octet-stream", blob)
		})
	} else {
		r.Static("/uploads", uploadDir)
	}

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware(sessions))
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	api.GET("/collection", galleryapi.GetCollection)
	api.POST("/language", galleryapi.SetLanguage)
	api.POST("/filter", galleryapi.SetFilter)

	api.POST("/artworks/:id/open", galleryapi.OpenArtwork(ar))
	api.GET("/detail", galleryapi.GetDetail)
	api.POST("/gallery", galleryapi.BackToGallery)

	api.GET("/chat", chatapi.GetTranscript)
	api.POST("/chat", chatapi.Submit)

	api.POST("/artworks", submission.SubmitArtwork(ar))

	api.GET("/texts", textsapi.GetTexts(ar))
}
