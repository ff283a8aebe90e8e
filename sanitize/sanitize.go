// Package sanitize implements the two pure tree passes of the optimizer:
// removal of fields holding known default/empty values, and rounding of
// numeric precision. Both are structural recursion over the untyped JSON
// value space (null | bool | number | string | array | object).
package sanitize

// numericDefaults maps field keys to the numeric value considered that
// field's default. A number field equal to its default carries no
// information and is removed. The table only applies when the value
// actually is a number; keys like "d" or "a" also occur with string
// values, which are covered by the generic empty-string rule instead.
var numericDefaults = map[string]float64{
	"ddd": 0,
	"ind": 0,
	"ty":  0,
	"bm":  0,
	"d":   0,
	"st":  0,
	"p":   0,
	"a":   0,
	"sk":  0,
	"sa":  0,
	"r":   1,
	"s":   100,
}

// removable reports whether a field equals a known default and should be
// dropped. It is evaluated on the value as-is, before recursing into it.
func removable(key string, value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case []interface{}:
		return len(v) == 0
	case string:
		return v == ""
	case float64:
		def, ok := numericDefaults[key]
		return ok && v == def
	case bool:
		return key == "hd" && !v
	}
	return false
}

// Sanitize returns a structurally equivalent but smaller tree with
// default-valued fields removed. Array elements are never dropped, only
// fields of objects within them. Identical input always yields identical
// output, and the function is idempotent.
func Sanitize(value interface{}) interface{} {
	switch v := value.(type) {
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = Sanitize(elem)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, elem := range v {
			if removable(key, elem) {
				continue
			}
			out[key] = Sanitize(elem)
		}
		return out
	default:
		return value
	}
}
