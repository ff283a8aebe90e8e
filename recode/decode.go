package recode

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/deepteams/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/tiff"
)

// decode reads an image in its declared format. The format switch keeps
// dispatch explicit instead of relying on sniffed format registration.
// Codec panics on malformed input are converted to errors so a broken
// image can never take down the caller.
func decode(format string, data []byte) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("decode %s: %v", format, r)
		}
	}()

	r := bytes.NewReader(data)
	switch format {
	case "png":
		img, err = png.Decode(r)
	case "jpeg":
		img, err = jpeg.Decode(r)
	case "gif":
		img, err = gif.Decode(r)
	case "tiff":
		img, err = tiff.Decode(r)
	case "webp":
		img, err = webp.Decode(r)
	default:
		return nil, errors.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode %s", format)
	}
	return img, nil
}
