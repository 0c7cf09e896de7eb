package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"resume-builder/resume/model"
)

var (
	// ErrExportFailed wraps rasterization and download failures.
	ErrExportFailed = errors.New("export failed")

	// ErrClipboardFailed wraps clipboard write failures.
	ErrClipboardFailed = errors.New("clipboard write failed")
)

// CopyFeedbackDuration is how long the "Copied" state is shown.
const CopyFeedbackDuration = 2 * time.Second

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// Clipboard is the write-only platform clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Artifact is a downloadable export.
type Artifact struct {
	FileName    string
	ContentType string
	Body        []byte
}

// Feedback is the one-shot notification shown after an export action.
type Feedback struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ResetAfter  time.Duration `json:"-"`
}

// Feedback shown after export actions.
var (
	DownloadedFeedback = Feedback{Title: "Downloaded!", Description: "Your resume has been saved."}
	CopiedFeedback     = Feedback{Title: "Copied!", Description: "Resume text copied to clipboard.", ResetAfter: CopyFeedbackDuration}

	DownloadFailedFeedback = Feedback{Title: "Download failed", Description: "We couldn't generate the image. Please try again."}
	CopyFailedFeedback     = Feedback{Title: "Copy failed", Description: "We couldn't copy the resume text. Please try again."}
)

// Exporter produces the image and clipboard exports of a resume.
type Exporter struct {
	Rasterizer Rasterizer
	Options    RasterOptions
}

// NewExporter constructs an Exporter with the default raster options.
func NewExporter(r Rasterizer) *Exporter {
	return &Exporter{Rasterizer: r, Options: DefaultRasterOptions()}
}

// Image rasterizes the rendered document into a PNG named after the resume.
func (e *Exporter) Image(ctx context.Context, d model.ResumeData) (Artifact, Feedback, error) {
	if e == nil || e.Rasterizer == nil {
		return Artifact{}, DownloadFailedFeedback, fmt.Errorf("%w: no rasterizer configured", ErrExportFailed)
	}
	page, err := Page(d)
	if err != nil {
		return Artifact{}, DownloadFailedFeedback, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	img, err := e.Rasterizer.Rasterize(ctx, page, e.Options)
	if err != nil {
		return Artifact{}, DownloadFailedFeedback, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if !bytes.HasPrefix(img, pngSignature) {
		return Artifact{}, DownloadFailedFeedback, fmt.Errorf("%w: rasterizer did not return a PNG", ErrExportFailed)
	}
	return Artifact{
			FileName:    DownloadName(d.FullName),
			ContentType: "image/png",
			Body:        img,
		},
		DownloadedFeedback,
		nil
}

// Text returns the plain-text export as a downloadable file.
func (e *Exporter) Text(d model.ResumeData) Artifact {
	return Artifact{
		FileName:    TextDownloadName(d.FullName),
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(PlainText(d)),
	}
}

// Copy writes the plain-text export to the clipboard.
func (e *Exporter) Copy(ctx context.Context, d model.ResumeData, clip Clipboard) (Feedback, error) {
	if clip == nil {
		return CopyFailedFeedback, fmt.Errorf("%w: no clipboard available", ErrClipboardFailed)
	}
	if err := clip.WriteText(ctx, PlainText(d)); err != nil {
		return CopyFailedFeedback, fmt.Errorf("%w: %w", ErrClipboardFailed, err)
	}
	return CopiedFeedback, nil
}

// BufferClipboard records the last text written to it.
type BufferClipboard struct {
	Text string
}

// WriteText stores text.
func (b *BufferClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.Text = text
	return nil
}
