package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestCompressImage(t *testing.T) {
	t.Run("downscales the longest side to the limit", func(t *testing.T) {
		out, err := CompressImage(encodePNG(t, 2400, 1200), 1200, 80)
		require.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 1200, decoded.Bounds().Dx())
		assert.Equal(t, 600, decoded.Bounds().Dy())
	})

	t.Run("portrait images scale by height", func(t *testing.T) {
		out, err := CompressImage(encodePNG(t, 600, 2400), 1200, 80)
		require.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 300, decoded.Bounds().Dx())
		assert.Equal(t, 1200, decoded.Bounds().Dy())
	})

	t.Run("small images keep their dimensions", func(t *testing.T) {
		out, err := CompressImage(encodePNG(t, 100, 80), 1200, 80)
		require.NoError(t, err)

		decoded, err := jpeg.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 100, decoded.Bounds().Dx())
		assert.Equal(t, 80, decoded.Bounds().Dy())
	})

	t.Run("non-image data errors", func(t *testing.T) {
		_, err := CompressImage([]byte("not an image"), 1200, 80)
		assert.Error(t, err)
	})
}
