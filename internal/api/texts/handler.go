package texts

import (
	"net/http"

	"museum-app/internal/app/http/middleware"
	"museum-app/internal/domain/museum"
	"museum-app/internal/infra/archive"
	"museum-app/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ------------------------------
// GET /api/texts?lang=
// ------------------------------
// Serves the localized UI text catalog. Backend override rows are merged
// per key; a fetch failure falls back to the built-in defaults silently.
func GetTexts(ar archive.Archive) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.MustSession(c)
		if !ok {
			return
		}

		lang := sess.Store.Language()
		if q := c.Query("lang"); q != "" {
			parsed, valid := museum.ParseLanguage(q)
			if !valid {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
				return
			}
			lang = parsed
		}

		rows, err := ar.ListTranslations(c.Request.Context())
		if err != nil {
			logging.L().Warn("failed to fetch translations", zap.Error(err))
			rows = nil
		}

		c.JSON(http.StatusOK, gin.H{
			"language": lang,
			"texts":    museum.MergeTexts(lang, rows),
		})
	}
}
