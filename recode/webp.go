package recode

import (
	"bytes"

	"github.com/deepteams/webp"
	"github.com/pkg/errors"
)

// WebP decodes an image in its source format and re-encodes it as WebP at
// the given quality (1-100). Any decode or encode failure is returned as
// an error so the caller can fall back to the original bytes.
func WebP(format string, data []byte, quality int) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("encode webp: %v", r)
		}
	}()

	img, err := decode(format, data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, errors.Wrap(err, "could not encode webp")
	}
	return buf.Bytes(), nil
}
