package middleware

import (
	"net/http"

	"museum-app/internal/app/session"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "museum_session"
	sessionCtxKey = "museum_session"
	cookieMaxAge  = 60 * 60 * 12
)

// SessionMiddleware resolves the client's application session from its
// cookie, creating one (and loading its collection) on first contact.
func SessionMiddleware(m *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *session.Session

		if id, err := c.Cookie(sessionCookie); err == nil {
			sess, _ = m.Get(id)
		}
		if sess == nil {
			sess = m.Create()
			c.SetCookie(sessionCookie, sess.ID, cookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionCtxKey, sess)
		c.Next()
	}
}

// MustSession fetches the resolved session from the request context.
func MustSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionCtxKey)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No session"})
		return nil, false
	}
	sess, ok := v.(*session.Session)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No session"})
		return nil, false
	}
	return sess, true
}
