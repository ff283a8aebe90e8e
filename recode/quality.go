package recode

// QualityFor picks the WebP quality from the size of the source payload's
// base64 text: the bigger the embedded image, the harder it is squeezed.
func QualityFor(b64Len int) int {
	switch {
	case b64Len > 1000000:
		return 75
	case b64Len > 500000:
		return 80
	default:
		return 85
	}
}
