package render

import (
	"context"
	"time"
)

// RasterOptions configures rasterization of the rendered document.
type RasterOptions struct {
	// Scale is the device pixel ratio used for the bitmap.
	Scale float64
	// Background is the opaque color painted behind the document.
	Background string
	// Selector identifies the subtree to capture.
	Selector string
	// Width is the viewport width in CSS pixels.
	Width int
	Timeout time.Duration
}

// DefaultRasterOptions matches the export contract: 2x scale on opaque white.
func DefaultRasterOptions() RasterOptions {
	return RasterOptions{
		Scale:      2,
		Background: PageColor,
		Selector:   "#resume-document",
		Width:      DocumentWidth,
		Timeout:    30 * time.Second,
	}
}

// Rasterizer turns a standalone HTML page into a PNG bitmap of one subtree.
type Rasterizer interface {
	Rasterize(ctx context.Context, page []byte, opts RasterOptions) ([]byte, error)
}
