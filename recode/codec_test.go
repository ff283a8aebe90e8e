package recode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/deepteams/webp"
	"github.com/stretchr/testify/assert"
)

// testImage builds a small opaque gradient.
func testImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestWebPRecode(t *testing.T) {
	src := encodePNG(t, testImage(10, 10))

	out, err := WebP("png", src, 85)
	assert.NoError(t, err)
	assert.NotEmpty(t, out)

	img, err := webp.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
}

func TestWebPMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		format string
		data   []byte
	}{
		{"garbage png", "png", []byte("definitely not a png")},
		{"truncated png", "png", encodePNG(t, testImage(10, 10))[:20]},
		{"empty input", "jpeg", nil},
		{"unsupported format", "bmp", []byte{0x42, 0x4d}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			out, err := WebP(tc.format, tc.data, 85)
			assert.Error(t, err)
			assert.Nil(t, out)
		})
	}
}

func TestPNGRecompress(t *testing.T) {
	src := encodePNG(t, testImage(16, 16))

	out, err := PNG(src)
	assert.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	assert.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
}

func TestPNGMalformedInput(t *testing.T) {
	out, err := PNG([]byte("not a png"))
	assert.Error(t, err)
	assert.Nil(t, out)
}
