package recode

import (
	"bytes"
	"image/png"

	"github.com/pkg/errors"
)

// Maximum compression; the encoder picks a per-row filter adaptively.
var pngEncoder = png.Encoder{CompressionLevel: png.BestCompression}

// PNG re-encodes a PNG image in its original codec at maximum compression
// effort. Used for image-sequence assets, which must keep their format.
func PNG(data []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("encode png: %v", r)
		}
	}()

	img, err := decode("png", data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pngEncoder.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "could not encode png")
	}
	return buf.Bytes(), nil
}
