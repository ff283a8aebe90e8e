package lottie

import (
	"encoding/base64"
	"strings"
)

const (
	dataURIPrefix = "data:image/"
	base64Marker  = ";base64,"
)

// Image formats the optimizer can decode from a data URI.
var supportedFormats = map[string]bool{
	"png":  true,
	"jpeg": true,
	"gif":  true,
	"tiff": true,
	"webp": true,
}

// DataURI is a decoded data:image/<fmt>;base64,<data> payload.
type DataURI struct {
	// Format is the normalized image format (png, jpeg, gif, tiff, webp).
	Format string
	// Data is the decoded image bytes.
	Data []byte
	// B64Len is the length of the base64 text, used for quality selection
	// and size comparisons.
	B64Len int
}

// ParseDataURI recognizes an embedded image payload. It reports false for
// external references, unsupported formats and malformed base64; such
// payloads are not candidates for recoding and must be left untouched.
func ParseDataURI(payload string) (*DataURI, bool) {
	if !strings.HasPrefix(payload, dataURIPrefix) {
		return nil, false
	}
	rest := payload[len(dataURIPrefix):]

	i := strings.Index(rest, base64Marker)
	if i < 0 {
		return nil, false
	}
	format, b64 := normalizeFormat(rest[:i]), rest[i+len(base64Marker):]

	if !supportedFormats[format] {
		return nil, false
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, false
	}

	return &DataURI{
		Format: format,
		Data:   data,
		B64Len: len(b64),
	}, true
}

// FormatDataURI builds an embedded image payload for the given format
// and raw image bytes.
func FormatDataURI(format string, data []byte) string {
	return dataURIPrefix + format + base64Marker + base64.StdEncoding.EncodeToString(data)
}

func normalizeFormat(format string) string {
	if format == "jpg" {
		return "jpeg"
	}
	return format
}
