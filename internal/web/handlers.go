package web

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mira-care/mira-agent/internal/cache"
	"github.com/mira-care/mira-agent/internal/chat"
)

// serviceName identifies this service in the health payload
const serviceName = "mira-agent"

// HealthHandler reports service liveness.
// GET /api/health
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": serviceName})
}

// ChatHandler handles one chat turn.
// POST /api/mira_chat
func ChatHandler(mediator *chat.Mediator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		// Malformed JSON is treated the same as missing fields.
		_ = c.ShouldBindJSON(&req)

		result, err := mediator.Handle(c.Request.Context(), req.UserID, req.Message)
		if errors.Is(err, chat.ErrMissingInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": chat.ErrMissingInput.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "chat failed"})
			return
		}

		c.JSON(http.StatusOK, ChatResponse{
			Response:          result.Response,
			CrisisDetected:    result.CrisisDetected,
			Severity:          string(result.Assessment.Label),
			SeverityScore:     math.Round(result.Assessment.Score*100) / 100,
			ActionRecommended: string(result.Recommended),
			ActionTaken:       string(result.ActionTaken),
			ContactNotified:   result.ContactNotified,
			SMSSent:           result.SMSSent,
			CallInitiated:     result.CallInitiated,
		})
	}
}

// ContactDebugHandler returns the primary contact for a user, or 404.
// GET /_debug/contact/:user_id
func ContactDebugHandler(contacts chat.ContactDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if contacts == nil {
			c.JSON(http.StatusNotFound, gin.H{"found": false, "message": "No contact found for user"})
			return
		}

		contact, err := contacts.PrimaryContact(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if contact == nil {
			c.JSON(http.StatusNotFound, gin.H{"found": false, "message": "No contact found for user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"found": true, "contact": contact})
	}
}

// TranscriptDebugHandler returns the cached recent turns for a user.
// GET /_debug/transcript/:user_id
func TranscriptDebugHandler(transcript *cache.Transcript) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		entries, err := transcript.Recent(c.Request.Context(), userID, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "transcript cache unavailable"})
			return
		}
		if entries == nil {
			entries = []cache.Entry{}
		}

		c.JSON(http.StatusOK, gin.H{"user_id": userID, "messages": entries, "count": len(entries)})
	}
}
