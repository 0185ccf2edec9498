package main

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "webp", formatFromPath("out/overlay.WEBP"))
	assert.Equal(t, "png", formatFromPath("overlay.png"))
	assert.Equal(t, "png", formatFromPath("overlay"))
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))

	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img, "png"))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	buf.Reset()
	require.NoError(t, encode(&buf, img, "webp"))
	assert.Equal(t, "RIFF", string(buf.Bytes()[:4]))

	assert.Error(t, encode(&buf, img, "gif"))
}
