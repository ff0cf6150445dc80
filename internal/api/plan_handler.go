package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gauravfit/coach-app/internal/catalog"
	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/planner"
	"gauravfit/coach-app/internal/session"
)

// PlanHandler derives daily plans. The workout location defaults to
// the profile setting and can be overridden per request.
type PlanHandler struct {
	sessions *session.Manager
	now      func() time.Time
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(sessions *session.Manager) *PlanHandler {
	return &PlanHandler{sessions: sessions, now: time.Now}
}

// GetToday derives the plan for the current date.
func (h *PlanHandler) GetToday(c *gin.Context) {
	loc := h.sessions.Profile(c.Request.Context()).WorkoutLocation
	if q := c.Query("location"); q != "" {
		loc = domain.ParseLocation(q)
	}
	c.JSON(http.StatusOK, planner.Derive(h.now(), loc))
}

// GetWeek returns the weekday table with both location-keyed lists so
// the client can render the full split at once.
func (h *PlanHandler) GetWeek(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Week())
}
