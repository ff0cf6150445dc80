package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/session"
)

// SessionHandler exposes the mutable session state: the daily log,
// the profile and the weight history.
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// --- Request DTOs ---

type logProteinRequest struct {
	Grams int `json:"grams" binding:"required,gt=0"`
}

type logWaterRequest struct {
	Liters float64 `json:"liters" binding:"required,gt=0"`
}

type logStepsRequest struct {
	Steps int `json:"steps" binding:"required,gt=0"`
}

type logSorenessRequest struct {
	Score *int `json:"score" binding:"required,min=0,max=10"`
}

type historyRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
}

// --- Handler Methods ---

// GetSession returns the full session snapshot, seeding the demo
// state on the first read.
func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessions.Snapshot(c.Request.Context()))
}

// ResetSession discards all state and returns the fresh seed.
func (h *SessionHandler) ResetSession(c *gin.Context) {
	h.sessions.ResetAll(c.Request.Context())
	c.JSON(http.StatusOK, h.sessions.Snapshot(c.Request.Context()))
}

// ToggleTask flips the completion flag for one exercise id.
func (h *SessionHandler) ToggleTask(c *gin.Context) {
	id := c.Param("id")
	completed := h.sessions.ToggleTask(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"exerciseId": id, "completed": completed})
}

// LogProtein adds grams of protein to today's total.
func (h *SessionHandler) LogProtein(c *gin.Context) {
	var req logProteinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	total := h.sessions.AddProtein(c.Request.Context(), req.Grams)
	c.JSON(http.StatusOK, gin.H{"proteinGrams": total})
}

// LogWater adds liters of water to today's total.
func (h *SessionHandler) LogWater(c *gin.Context) {
	var req logWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	total := h.sessions.AddWater(c.Request.Context(), req.Liters)
	c.JSON(http.StatusOK, gin.H{"waterLiters": total})
}

// LogSteps adds a step count to today's total.
func (h *SessionHandler) LogSteps(c *gin.Context) {
	var req logStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	total := h.sessions.AddSteps(c.Request.Context(), req.Steps)
	c.JSON(http.StatusOK, gin.H{"steps": total})
}

// LogSoreness overwrites today's soreness score.
func (h *SessionHandler) LogSoreness(c *gin.Context) {
	var req logSorenessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	h.sessions.RecordSoreness(c.Request.Context(), *req.Score)
	c.JSON(http.StatusOK, gin.H{"sorenessScore": *req.Score})
}

// AppendHistory records a weigh-in for today and freezes the current
// completed-task count into the history.
func (h *SessionHandler) AppendHistory(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	entry := h.sessions.AppendHistoryEntry(c.Request.Context(), req.WeightKg)
	c.JSON(http.StatusCreated, entry)
}

// UpdateProfile applies a partial profile change and returns the
// resulting profile.
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var upd domain.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, h.sessions.UpdateProfile(c.Request.Context(), upd))
}
