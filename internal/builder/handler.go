// Package builder serves the resume wizard: the HTML pages a browser walks
// through and a JSON API exposing the same operations.
package builder

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/session"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/wizard"
)

// Handler wires HTTP handlers to the session service and exporter.
type Handler struct {
	Sessions     *session.Service
	Exporter     *render.Exporter
	Metrics      metrics.Recorder
	CookieSecure bool
}

// NewHandler constructs a Handler.
func NewHandler(sessions *session.Service, exporter *render.Exporter, rec metrics.Recorder, cookieSecure bool) *Handler {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Handler{Sessions: sessions, Exporter: exporter, Metrics: rec, CookieSecure: cookieSecure}
}

// RegisterRoutes attaches the JSON API to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	b := rg.Group("/builder")
	b.GET("", h.state)
	b.PUT("/data", h.replaceData)
	b.POST("/next", h.next)
	b.POST("/prev", h.prev)
	b.POST("/edit", h.edit)
	b.POST("/reset", h.reset)
	b.PATCH("/fields", h.setFields)

	b.POST("/education", h.addEducation)
	b.PATCH("/education/:index", h.updateEducation)
	b.DELETE("/education/:index", h.removeEducation)

	b.POST("/experience", h.addExperience)
	b.PATCH("/experience/:index", h.updateExperience)
	b.DELETE("/experience/:index", h.removeExperience)

	b.GET("/export/text", h.exportText)
	b.GET("/export/image", h.exportImage)
	b.POST("/copy", h.copyText)
	b.POST("/copied", h.confirmCopy)
}

// RegisterPages attaches the HTML pages to the router group.
func (h *Handler) RegisterPages(rg *gin.RouterGroup) {
	rg.GET("/", h.landingPage)
	rg.GET("/builder", h.builderPage)
	rg.POST("/builder", h.submitPage)
	rg.GET("/builder/export.png", h.downloadImagePage)
	rg.GET("/builder/export.txt", h.downloadTextPage)
	rg.POST("/builder/copy", h.copyPage)
	rg.POST("/builder/copied", h.confirmCopy)
}

// resolve finds or starts the caller's session. A new session id is returned
// to the client as a cookie and in the X-Session-Id header.
func (h *Handler) resolve(c *gin.Context) (session.Session, bool) {
	sess, created, err := h.Sessions.Resolve(c.Request.Context(), middleware.SessionIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load session", nil)
		return session.Session{}, false
	}
	middleware.SetSessionID(c, sess.ID)
	c.Header(middleware.SessionHeader, sess.ID)
	if created {
		h.setCookie(c, sess)
	}
	c.Set("step", int(sess.Step))
	return sess, true
}

func (h *Handler) setCookie(c *gin.Context, sess session.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(session.DefaultTTL.Seconds())
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, sess.ID, maxAge, "/", "", h.CookieSecure, true)
}

// mutate resolves the session and applies op to it, mapping domain errors to
// HTTP errors. The returned bool is false when a response was already written.
func (h *Handler) mutate(c *gin.Context, op func(id string) (session.Session, error)) (session.Session, bool) {
	sess, ok := h.resolve(c)
	if !ok {
		return session.Session{}, false
	}
	next, err := op(sess.ID)
	if err != nil {
		writeDomainError(c, err)
		return sess, false
	}
	c.Set("step", int(next.Step))
	return next, true
}

func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrLastEntry):
		respond.Error(c, http.StatusConflict, "last_entry", "at least one entry is required", nil)
	case errors.Is(err, model.ErrIndexOutOfRange):
		respond.Error(c, http.StatusNotFound, "not_found", "entry not found", nil)
	case errors.Is(err, model.ErrUnknownField):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, wizard.ErrUnknownAction), errors.Is(err, wizard.ErrNoList):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, session.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "session_expired", "session expired", nil)
	case errors.Is(err, render.ErrExportFailed):
		respond.Error(c, http.StatusBadGateway, "export_failed", render.DownloadFailedFeedback.Description, nil)
	case errors.Is(err, render.ErrClipboardFailed):
		respond.Error(c, http.StatusInternalServerError, "clipboard_failed", render.CopyFailedFeedback.Description, nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "unexpected error", nil)
	}
}

func parseIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be a non-negative integer", nil)
		return 0, false
	}
	return idx, true
}

func writeAttachment(c *gin.Context, art render.Artifact) {
	respond.Attachment(c, art.FileName, art.ContentType, art.Body)
}
