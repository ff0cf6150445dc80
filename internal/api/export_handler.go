package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"gauravfit/coach-app/internal/catalog"
	"gauravfit/coach-app/internal/domain"
	"gauravfit/coach-app/internal/export"
	"gauravfit/coach-app/internal/planner"
	"gauravfit/coach-app/internal/session"
	"gauravfit/coach-app/internal/storage"
)

// ExportHandler renders the printable day sheet and the raw state
// dump. File storage is optional; without it ?upload=true is a 503.
type ExportHandler struct {
	sessions *session.Manager
	storage  storage.FileStorage
	now      func() time.Time
}

// NewExportHandler creates a new ExportHandler. storage may be nil.
func NewExportHandler(sessions *session.Manager, store storage.FileStorage) *ExportHandler {
	return &ExportHandler{sessions: sessions, storage: store, now: time.Now}
}

// ExportPlan renders today's plan as a markdown day sheet. By default
// it downloads directly; with ?upload=true the sheet is written to
// object storage and a presigned download URL is returned instead.
func (h *ExportHandler) ExportPlan(c *gin.Context) {
	profile := h.sessions.Profile(c.Request.Context())
	loc := profile.WorkoutLocation
	if q := c.Query("location"); q != "" {
		loc = domain.ParseLocation(q)
	}
	plan := planner.Derive(h.now(), loc)
	sheet := export.DaySheet(plan, profile, catalog.Targets)

	if c.Query("upload") == "true" {
		if h.storage == nil {
			abortWithError(c, http.StatusServiceUnavailable, "File storage is not configured")
			return
		}
		key := fmt.Sprintf("exports/plan-%s.md", plan.Date)
		if err := h.storage.Upload(c.Request.Context(), key, "text/markdown", []byte(sheet)); err != nil {
			logrus.WithError(err).Error("Failed to upload plan export")
			abortWithError(c, http.StatusInternalServerError, "Failed to upload plan export")
			return
		}
		url, err := h.storage.GeneratePresignedDownloadURL(c.Request.Context(), key, storage.DefaultPresignedURLExpiry)
		if err != nil {
			logrus.WithError(err).Error("Failed to presign plan export")
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
			return
		}
		c.JSON(http.StatusOK, gin.H{"objectKey": key, "downloadUrl": url})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=plan-%s.md", plan.Date))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(sheet))
}

// DeleteExportedPlan removes today's uploaded day sheet from object
// storage, invalidating any presigned links to it.
func (h *ExportHandler) DeleteExportedPlan(c *gin.Context) {
	if h.storage == nil {
		abortWithError(c, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}
	key := fmt.Sprintf("exports/plan-%s.md", h.now().Format("2006-01-02"))
	if err := h.storage.DeleteObject(c.Request.Context(), key); err != nil {
		logrus.WithError(err).Error("Failed to delete plan export")
		abortWithError(c, http.StatusInternalServerError, "Failed to delete plan export")
		return
	}
	c.JSON(http.StatusOK, gin.H{"objectKey": key, "deleted": true})
}

// ExportState downloads the profile and weight history as JSON.
func (h *ExportHandler) ExportState(c *gin.Context) {
	snap := h.sessions.Snapshot(c.Request.Context())
	data, err := export.StateJSON(snap)
	if err != nil {
		logrus.WithError(err).Error("Failed to serialize session state")
		abortWithError(c, http.StatusInternalServerError, "Failed to serialize session state")
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=state-%s.json", h.now().Format("2006-01-02")))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}
