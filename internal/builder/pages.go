package builder

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/session"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/wizard"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = template.Must(template.New("pages").Funcs(template.FuncMap{
	"json": toJSON,
}).ParseFS(templateFiles, "templates/*.html"))

func toJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

const builderPath = "/builder"

// feature is one card on the landing page.
type feature struct {
	Title string
	Desc  string
}

var features = []feature{
	{Title: "Step-by-Step Guidance", Desc: "We walk you through every section of your resume."},
	{Title: "Professional Formatting", Desc: "Clean, polished layout ready for job applications."},
	{Title: "Instant Download", Desc: "Download your finished resume as an image instantly."},
	{Title: "Review Before Saving", Desc: "Preview and confirm everything before finalizing."},
}

type landingView struct {
	Features []feature
}

type builderView struct {
	Step           wizard.Step
	Markers        []wizard.Marker
	Component      *wizard.Component
	Fields         []wizard.BoundField
	Entries        []wizard.Entry
	ShowNavigation bool
	CanGoBack      bool
	NextLabel      string

	Preview   template.HTML
	Copied    bool
	CopyText  string
	FileName  string
	TextName  string
	ResetMs   int64
	Notice    *session.Notice
	Feedbacks map[string]render.Feedback
}

func (h *Handler) landingPage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "landing", landingView{Features: features})
}

func (h *Handler) builderPage(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	if sess.Notice != nil {
		if _, err := h.Sessions.TakeNotice(c.Request.Context(), sess.ID); err != nil {
			telemetry.Error("builder.take_notice_failed", map[string]any{"error": err.Error()})
		}
	}
	view, err := h.newBuilderView(sess)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to render resume", nil)
		return
	}
	h.renderPage(c, http.StatusOK, "builder", view)
}

func (h *Handler) newBuilderView(sess session.Session) (builderView, error) {
	b := sess.Builder()
	view := builderView{
		Step:           b.Step,
		Markers:        wizard.Indicator(b.Step),
		ShowNavigation: b.ShowNavigation(),
		CanGoBack:      b.CanGoBack(),
		NextLabel:      b.NextLabel(),
		Notice:         sess.Notice,
		FileName:       render.DownloadName(b.Data.FullName),
		TextName:       render.TextDownloadName(b.Data.FullName),
		ResetMs:        render.CopyFeedbackDuration.Milliseconds(),
		Feedbacks: map[string]render.Feedback{
			"downloaded":     render.DownloadedFeedback,
			"downloadFailed": render.DownloadFailedFeedback,
			"copied":         render.CopiedFeedback,
			"copyFailed":     render.CopyFailedFeedback,
		},
	}
	if comp := b.Component(); comp != nil {
		view.Component = comp
		view.Fields = comp.Bound(b.Data)
		view.Entries = comp.Entries(b.Data)
		return view, nil
	}
	doc, err := render.Document(b.Data)
	if err != nil {
		return builderView{}, err
	}
	view.Preview = doc
	if h.Sessions.Copied(sess) {
		view.Copied = true
		view.CopyText = render.PlainText(b.Data)
	}
	return view, nil
}

// submitPage applies the posted step form and redirects back to the builder.
func (h *Handler) submitPage(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form", nil)
		return
	}
	action, err := wizard.ParseAction(c.PostForm("action"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	c.Set("action", action.String())

	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	if _, err := h.Sessions.Submit(c.Request.Context(), sess.ID, c.Request.PostForm, action); err != nil {
		notice, known := formNotice(err)
		if !known {
			writeDomainError(c, err)
			return
		}
		if err := h.Sessions.SetNotice(c.Request.Context(), sess.ID, notice); err != nil {
			writeDomainError(c, err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, builderPath)
}

func formNotice(err error) (session.Notice, bool) {
	switch {
	case errors.Is(err, model.ErrLastEntry):
		return session.Notice{Title: "Cannot remove entry", Description: "At least one entry is required.", Failed: true}, true
	case errors.Is(err, model.ErrIndexOutOfRange):
		return session.Notice{Title: "Entry not found", Description: "That entry no longer exists.", Failed: true}, true
	case errors.Is(err, wizard.ErrNoList):
		return session.Notice{Title: "Nothing to add", Description: "This step has no entries.", Failed: true}, true
	default:
		return session.Notice{}, false
	}
}

func (h *Handler) downloadImagePage(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	art, fb, err := h.renderImage(c.Request.Context(), sess.Data)
	if err != nil {
		if fromScript(c) {
			writeDomainError(c, err)
			return
		}
		h.redirectWithNotice(c, sess.ID, session.Notice{Title: fb.Title, Description: fb.Description, Failed: true})
		return
	}
	writeAttachment(c, art)
}

func (h *Handler) downloadTextPage(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	writeAttachment(c, h.renderText(sess.Data))
}

func (h *Handler) copyPage(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	text, fb, err := h.renderCopy(c.Request.Context(), sess.Data)
	if err != nil {
		if fromScript(c) {
			writeDomainError(c, err)
			return
		}
		h.redirectWithNotice(c, sess.ID, session.Notice{Title: fb.Title, Description: fb.Description, Failed: true})
		return
	}
	if fromScript(c) {
		// The page script writes the text and then posts to /builder/copied.
		respond.OK(c, CopyResponse{Text: text, ResetAfterMs: fb.ResetAfter.Milliseconds(), Feedback: fb})
		return
	}
	notice := session.Notice{Title: fb.Title, Description: fb.Description}
	if _, err := h.Sessions.MarkCopied(c.Request.Context(), sess.ID, fb.ResetAfter, &notice); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, builderPath)
}

func (h *Handler) redirectWithNotice(c *gin.Context, id string, n session.Notice) {
	if err := h.Sessions.SetNotice(c.Request.Context(), id, n); err != nil {
		telemetry.Error("builder.set_notice_failed", map[string]any{"error": err.Error()})
	}
	c.Redirect(http.StatusSeeOther, builderPath)
}

// fromScript reports whether the request was issued by the page script
// rather than a plain form post or link.
func fromScript(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "fetch"
}

func (h *Handler) renderPage(c *gin.Context, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		telemetry.Error("builder.template_failed", map[string]any{"template": name, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to render page", nil)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
