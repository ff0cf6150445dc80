package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gauravfit/coach-app/internal/coach"
	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/session"
)

// CoachHandler bridges the chat screen to the model provider. The
// conversation log lives in the session manager; the user's turn is
// recorded before the provider is called, so a failed call leaves a
// dangling unanswered turn rather than losing the message. Only the
// model's turn is gated on a complete reply.
type CoachHandler struct {
	provider coach.Provider
	sessions *session.Manager
}

// NewCoachHandler creates a new CoachHandler.
func NewCoachHandler(provider coach.Provider, sessions *session.Manager) *CoachHandler {
	return &CoachHandler{provider: provider, sessions: sessions}
}

// ChatRequest is the payload for a chat turn. Stream defaults to
// true; pass false to get the reply as a single JSON document.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Mode    string `json:"mode"`
	Stream  *bool  `json:"stream"`
}

// Chat sends one user turn to the coach. The reply arrives as an SSE
// stream of "message" events followed by a "done" event, or as plain
// JSON when stream=false.
func (h *CoachHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	mode := coach.ParseMode(req.Mode)

	// The history sent to the provider excludes the prompt itself; the
	// user's turn is logged up front so a failed call still keeps it,
	// as a dangling unanswered turn.
	history := h.sessions.Messages()
	h.sessions.AppendMessage(domain.RoleUser, req.Message)

	if req.Stream != nil && !*req.Stream {
		reply, err := h.provider.Chat(c.Request.Context(), history, req.Message, mode)
		if err != nil {
			h.abortWithProviderError(c, err)
			return
		}
		msg := h.sessions.AppendMessage(domain.RoleModel, reply)
		c.JSON(http.StatusOK, msg)
		return
	}

	// SSE headers go out with the first fragment. A failure before any
	// fragment can still produce a regular JSON error response.
	started := false
	reply, err := h.provider.ChatStream(c.Request.Context(), history, req.Message, mode, func(chunk string) {
		if !started {
			c.Writer.Header().Set("Content-Type", "text/event-stream")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			started = true
		}
		c.SSEvent("message", chunk)
		c.Writer.Flush()
	})
	if err != nil {
		if !started {
			h.abortWithProviderError(c, err)
			return
		}
		logrus.WithError(err).Warn("coach stream interrupted")
		c.SSEvent("error", "The coach connection was interrupted.")
		c.Writer.Flush()
		return
	}

	msg := h.sessions.AppendMessage(domain.RoleModel, reply)
	c.SSEvent("done", msg)
	c.Writer.Flush()
}

// ResetChat clears the conversation log.
func (h *CoachHandler) ResetChat(c *gin.Context) {
	h.sessions.ResetChat()
	c.JSON(http.StatusOK, gin.H{"messages": []domain.ChatMessage{}})
}

// GetTip returns the daily one-liner. The provider degrades to a
// static tip on any failure, so this endpoint never errors.
func (h *CoachHandler) GetTip(c *gin.Context) {
	tip, err := h.provider.DailyTip(c.Request.Context())
	if err != nil {
		h.abortWithProviderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tip": tip})
}

func (h *CoachHandler) abortWithProviderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, coach.ErrNoAPIKey):
		abortWithError(c, http.StatusServiceUnavailable, "AI coach is not configured")
	case errors.Is(err, coach.ErrEmptyReply):
		abortWithError(c, http.StatusBadGateway, "AI coach returned an empty reply")
	default:
		logrus.WithError(err).Error("coach provider call failed")
		abortWithError(c, http.StatusBadGateway, "AI coach is unavailable")
	}
}
