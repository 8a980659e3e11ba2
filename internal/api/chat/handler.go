package chat

import (
	"net/http"

	"museum-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

type SubmitRequest struct {
	Message string `json:"message"`
}

// ------------------------------
// POST /api/chat
// ------------------------------
func Submit(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The currently selected artwork, if any, biases the curator's answer.
	selected, _, _ := sess.View.Detail()
	accepted := sess.Chat.Submit(c.Request.Context(), req.Message, selected)

	c.JSON(http.StatusOK, gin.H{
		"accepted":   accepted,
		"thinking":   sess.Chat.Thinking(),
		"transcript": sess.Chat.Transcript(),
	})
}

// ------------------------------
// GET /api/chat
// ------------------------------
func GetTranscript(c *gin.Context) {
	sess, ok := middleware.MustSession(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"thinking":   sess.Chat.Thinking(),
		"transcript": sess.Chat.Transcript(),
	})
}
