package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/resume/model"
)

type stubRasterizer struct {
	page []byte
	opts RasterOptions
	out  []byte
	err  error
}

func (s *stubRasterizer) Rasterize(ctx context.Context, page []byte, opts RasterOptions) ([]byte, error) {
	s.page = page
	s.opts = opts
	return s.out, s.err
}

type failingClipboard struct{}

func (failingClipboard) WriteText(context.Context, string) error {
	return errors.New("permission denied")
}

func whitePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDownloadName(t *testing.T) {
	assert.Equal(t, "resume.png", DownloadName(""))
	assert.Equal(t, "resume.png", DownloadName("   "))
	assert.Equal(t, "Jane Doe.png", DownloadName("Jane Doe"))
	assert.Equal(t, "a_b.png", DownloadName("a/b"))
	assert.Equal(t, "resume.txt", TextDownloadName(""))
}

func TestImageExportUsesDefaultRasterOptions(t *testing.T) {
	stub := &stubRasterizer{out: whitePNG(t)}
	exp := NewExporter(stub)

	art, fb, err := exp.Image(context.Background(), janeDoe())
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe.png", art.FileName)
	assert.Equal(t, "image/png", art.ContentType)
	assert.Equal(t, "Downloaded!", fb.Title)

	assert.Equal(t, 2.0, stub.opts.Scale)
	assert.Equal(t, "#ffffff", stub.opts.Background)
	assert.Contains(t, string(stub.page), "Jane Doe")
}

func TestImageExportBlankNameFallsBack(t *testing.T) {
	exp := NewExporter(&stubRasterizer{out: whitePNG(t)})
	art, _, err := exp.Image(context.Background(), model.Empty())
	require.NoError(t, err)
	assert.Equal(t, "resume.png", art.FileName)
}

func TestImageExportSurfacesRasterFailure(t *testing.T) {
	exp := NewExporter(&stubRasterizer{err: errors.New("chrome crashed")})
	_, fb, err := exp.Image(context.Background(), janeDoe())
	require.ErrorIs(t, err, ErrExportFailed)
	assert.Equal(t, DownloadFailedFeedback, fb)
}

func TestImageExportRejectsNonPNG(t *testing.T) {
	exp := NewExporter(&stubRasterizer{out: []byte("GIF89a")})
	_, _, err := exp.Image(context.Background(), janeDoe())
	require.ErrorIs(t, err, ErrExportFailed)
}

func TestImageExportWithoutRasterizer(t *testing.T) {
	_, _, err := NewExporter(nil).Image(context.Background(), janeDoe())
	require.ErrorIs(t, err, ErrExportFailed)
}

func TestCopyWritesPlainText(t *testing.T) {
	clip := &BufferClipboard{}
	fb, err := NewExporter(nil).Copy(context.Background(), janeDoe(), clip)
	require.NoError(t, err)
	assert.Equal(t, PlainText(janeDoe()), clip.Text)
	assert.Equal(t, "Copied!", fb.Title)
	assert.Equal(t, CopyFeedbackDuration, fb.ResetAfter)
}

func TestCopySurfacesClipboardFailure(t *testing.T) {
	fb, err := NewExporter(nil).Copy(context.Background(), janeDoe(), failingClipboard{})
	require.ErrorIs(t, err, ErrClipboardFailed)
	assert.Equal(t, CopyFailedFeedback, fb)
}

func TestTextArtifact(t *testing.T) {
	art := NewExporter(nil).Text(janeDoe())
	assert.Equal(t, "Jane Doe.txt", art.FileName)
	assert.Equal(t, PlainText(janeDoe()), string(art.Body))
}
