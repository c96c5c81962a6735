package storage

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeDataURL(t *testing.T) {
	raw := pngBytes(t, 4, 4)
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	decoded, err := DecodeDataURL(dataURL)
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	_, err = DecodeDataURL("https://img.example/ya-hosteada.jpg")
	assert.ErrorIs(t, err, ErrInvalidDataURL)

	_, err = DecodeDataURL("data:image/png;base64,???no-base64???")
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestOptimizeKeepsSmallImages(t *testing.T) {
	out, err := Optimize(pngBytes(t, 100, 60))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
}

func TestOptimizeDownscalesWideImages(t *testing.T) {
	out, err := Optimize(pngBytes(t, 2400, 1200))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestOptimizeRejectsGarbage(t *testing.T) {
	_, err := Optimize([]byte("esto no es una imagen"))
	assert.Error(t, err)
}
