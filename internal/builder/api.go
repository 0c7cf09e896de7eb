package builder

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/session"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func (h *Handler) state(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	respond.OK(c, toState(sess))
}

func (h *Handler) replaceData(c *gin.Context) {
	var data model.ResumeData
	if err := c.ShouldBindJSON(&data); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.Replace(c.Request.Context(), id, data)
	})
}

func (h *Handler) next(c *gin.Context) {
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.Next(c.Request.Context(), id)
	})
}

func (h *Handler) prev(c *gin.Context) {
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.Prev(c.Request.Context(), id)
	})
}

func (h *Handler) edit(c *gin.Context) {
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.Edit(c.Request.Context(), id)
	})
}

func (h *Handler) reset(c *gin.Context) {
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.Reset(c.Request.Context(), id)
	})
}

func (h *Handler) setFields(c *gin.Context) {
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.SetFields(c.Request.Context(), id, fields)
	})
}

func (h *Handler) addEducation(c *gin.Context) {
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.AddEducation(c.Request.Context(), id)
	})
}

func (h *Handler) updateEducation(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.UpdateEducation(c.Request.Context(), id, idx, fields)
	})
}

func (h *Handler) removeEducation(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.RemoveEducation(c.Request.Context(), id, idx)
	})
}

func (h *Handler) addExperience(c *gin.Context) {
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.AddExperience(c.Request.Context(), id)
	})
}

func (h *Handler) updateExperience(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}
	fields, ok := bindFields(c)
	if !ok {
		return
	}
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.UpdateExperience(c.Request.Context(), id, idx, fields)
	})
}

func (h *Handler) removeExperience(c *gin.Context) {
	idx, ok := parseIndex(c)
	if !ok {
		return
	}
	h.respondMutation(c, func(id string) (session.Session, error) {
		return h.Sessions.RemoveExperience(c.Request.Context(), id, idx)
	})
}

func (h *Handler) exportText(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	writeAttachment(c, h.renderText(sess.Data))
}

func (h *Handler) exportImage(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	art, _, err := h.renderImage(c.Request.Context(), sess.Data)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeAttachment(c, art)
}

// copyText returns the clipboard text. The session shows the copied state
// only once the client confirms the write through confirmCopy.
func (h *Handler) copyText(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	text, fb, err := h.renderCopy(c.Request.Context(), sess.Data)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	respond.OK(c, CopyResponse{
		Text:         text,
		ResetAfterMs: fb.ResetAfter.Milliseconds(),
		Feedback:     fb,
	})
}

func (h *Handler) confirmCopy(c *gin.Context) {
	sess, ok := h.resolve(c)
	if !ok {
		return
	}
	d := render.CopiedFeedback.ResetAfter
	if _, err := h.Sessions.MarkCopied(c.Request.Context(), sess.ID, d, nil); err != nil {
		writeDomainError(c, err)
		return
	}
	respond.OK(c, CopiedResponse{Copied: true, ResetAfterMs: d.Milliseconds()})
}

func (h *Handler) respondMutation(c *gin.Context, op func(id string) (session.Session, error)) {
	sess, ok := h.mutate(c, op)
	if !ok {
		return
	}
	respond.OK(c, toState(sess))
}

// bindFields decodes a flat JSON object of field name to value.
func bindFields(c *gin.Context) (map[string]string, bool) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "body must be a non-empty object of field values", nil)
		return nil, false
	}
	return fields, true
}
