package render

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#ffffff")
	require.NoError(t, err)
	assert.Equal(t, int64(255), c.R)
	assert.Equal(t, int64(255), c.G)
	assert.Equal(t, int64(255), c.B)
	assert.Equal(t, 1.0, c.A)

	c, err = parseHexColor("#1e3a5f")
	require.NoError(t, err)
	assert.Equal(t, int64(0x1e), c.R)
	assert.Equal(t, int64(0x3a), c.G)
	assert.Equal(t, int64(0x5f), c.B)

	c, err = parseHexColor("fff")
	require.NoError(t, err)
	assert.Equal(t, int64(255), c.B)

	_, err = parseHexColor("white")
	require.Error(t, err)
}

func chromeBinary() string {
	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	return ""
}

func TestChromeRasterizerIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("short mode")
	}
	bin := chromeBinary()
	if bin == "" {
		t.Skip("chrome not installed")
	}

	page, err := Page(janeDoe())
	require.NoError(t, err)

	opts := DefaultRasterOptions()
	opts.Timeout = 60 * time.Second
	out, err := NewChromeRasterizer(bin).Rasterize(context.Background(), page, opts)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, img.Bounds().Dx(), DocumentWidth)

	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff, 0xffff}, []uint32{r, g, b, a})
}
