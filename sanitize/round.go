package sanitize

import "math"

const precision = 1000 // 3 decimal places

// Round returns the tree with every numeric leaf rounded to 3 decimal
// places, regardless of magnitude. All other scalars pass through
// unchanged. Applied after Sanitize, over the already-cleaned tree.
func Round(value interface{}) interface{} {
	switch v := value.(type) {
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, elem := range v {
			out[i] = Round(elem)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, elem := range v {
			out[key] = Round(elem)
		}
		return out
	case float64:
		return math.Round(v*precision) / precision
	default:
		return value
	}
}
