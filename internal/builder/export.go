package builder

import (
	"context"
	"time"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const (
	kindImage = "image"
	kindText  = "text"
	kindCopy  = "copy"
)

func (h *Handler) renderImage(ctx context.Context, d model.ResumeData) (render.Artifact, render.Feedback, error) {
	start := time.Now()
	art, fb, err := h.Exporter.Image(ctx, d)
	h.Metrics.ObserveExportDuration(kindImage, time.Since(start))
	h.recordExport(kindImage, err)
	return art, fb, err
}

func (h *Handler) renderText(d model.ResumeData) render.Artifact {
	art := h.Exporter.Text(d)
	h.recordExport(kindText, nil)
	return art
}

func (h *Handler) renderCopy(ctx context.Context, d model.ResumeData) (string, render.Feedback, error) {
	clip := &render.BufferClipboard{}
	fb, err := h.Exporter.Copy(ctx, d, clip)
	h.recordExport(kindCopy, err)
	return clip.Text, fb, err
}

func (h *Handler) recordExport(kind string, err error) {
	if err != nil {
		h.Metrics.IncExport(kind, metrics.ResultFailure)
		telemetry.Error("export.failed", map[string]any{"kind": kind, "error": err.Error()})
		return
	}
	h.Metrics.IncExport(kind, metrics.ResultSuccess)
}
