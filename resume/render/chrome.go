package render

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// ChromeRasterizer captures the document with a headless Chrome instance.
// Requires Chrome/Chromium on the host.
type ChromeRasterizer struct {
	// ExecPath overrides the browser binary; empty uses chromedp's lookup.
	ExecPath string
}

// NewChromeRasterizer constructs a ChromeRasterizer.
func NewChromeRasterizer(execPath string) *ChromeRasterizer {
	return &ChromeRasterizer{ExecPath: strings.TrimSpace(execPath)}
}

// Rasterize loads the page in a fresh browser tab and screenshots opts.Selector.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, page []byte, opts RasterOptions) ([]byte, error) {
	defaults := DefaultRasterOptions()
	if opts.Scale <= 0 {
		opts.Scale = defaults.Scale
	}
	if opts.Selector == "" {
		opts.Selector = defaults.Selector
	}
	if opts.Width <= 0 {
		opts.Width = defaults.Width
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if opts.Background == "" {
		opts.Background = defaults.Background
	}
	bg, err := parseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var buf []byte
	err = chromedp.Run(browserCtx,
		emulation.SetDeviceMetricsOverride(int64(opts.Width+96), 1024, 1, false),
		emulation.SetDefaultBackgroundColorOverride().WithColor(bg),
		chromedp.Navigate("data:text/html;base64,"+base64.StdEncoding.EncodeToString(page)),
		chromedp.WaitVisible(opts.Selector, chromedp.ByQuery),
		chromedp.ScreenshotScale(opts.Selector, opts.Scale, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rasterization failed: %w", err)
	}
	if len(buf) == 0 {
		return nil, errors.New("browser returned an empty screenshot")
	}
	return buf, nil
}

// parseHexColor parses #rgb or #rrggbb into an opaque RGBA.
func parseHexColor(raw string) (*cdp.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid background color %q", raw)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid background color %q", raw)
	}
	return &cdp.RGBA{
		R: int64(v >> 16 & 0xff),
		G: int64(v >> 8 & 0xff),
		B: int64(v & 0xff),
		A: 1,
	}, nil
}
