package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type SanitizeTestCase struct {
	name     string
	input    interface{}
	expected interface{}
}

func TestSanitize(t *testing.T) {
	cases := []SanitizeTestCase{
		{
			name:     "null field removed",
			input:    map[string]interface{}{"x": nil, "y": 1.0},
			expected: map[string]interface{}{"y": 1.0},
		},
		{
			name:     "empty array field removed",
			input:    map[string]interface{}{"layers": []interface{}{}, "y": 1.0},
			expected: map[string]interface{}{"y": 1.0},
		},
		{
			name:     "empty string field removed for any key",
			input:    map[string]interface{}{"nm": "", "custom": "", "cl": "c"},
			expected: map[string]interface{}{"cl": "c"},
		},
		{
			name:     "numeric defaults removed",
			input:    map[string]interface{}{"ddd": 0.0, "ind": 0.0, "ty": 0.0, "bm": 0.0, "st": 0.0, "sk": 0.0, "sa": 0.0},
			expected: map[string]interface{}{},
		},
		{
			name:     "r default is 1",
			input:    map[string]interface{}{"r": 1.0},
			expected: map[string]interface{}{},
		},
		{
			name:     "r non-default retained",
			input:    map[string]interface{}{"r": 2.0},
			expected: map[string]interface{}{"r": 2.0},
		},
		{
			name:     "s default is 100",
			input:    map[string]interface{}{"s": 100.0},
			expected: map[string]interface{}{},
		},
		{
			name:     "s non-default retained",
			input:    map[string]interface{}{"s": 99.0},
			expected: map[string]interface{}{"s": 99.0},
		},
		{
			name:     "non-default key zero retained",
			input:    map[string]interface{}{"fr": 0.0},
			expected: map[string]interface{}{"fr": 0.0},
		},
		{
			name:     "hd false removed, hd true retained",
			input:    map[string]interface{}{"hd": false, "other": map[string]interface{}{"hd": true}},
			expected: map[string]interface{}{"other": map[string]interface{}{"hd": true}},
		},
		{
			name:     "a matches the rule for its actual type",
			input:    map[string]interface{}{"a": 0.0, "b": map[string]interface{}{"a": "x"}},
			expected: map[string]interface{}{"b": map[string]interface{}{"a": "x"}},
		},
		{
			name:     "d numeric zero removed, d string retained",
			input:    map[string]interface{}{"d": 0.0, "b": map[string]interface{}{"d": "11"}},
			expected: map[string]interface{}{"b": map[string]interface{}{"d": "11"}},
		},
		{
			name: "array elements sanitized but never dropped",
			input: []interface{}{
				map[string]interface{}{"nm": "", "ty": 4.0},
				map[string]interface{}{},
				nil,
			},
			expected: []interface{}{
				map[string]interface{}{"ty": 4.0},
				map[string]interface{}{},
				nil,
			},
		},
		{
			name:     "scalars pass through",
			input:    "hello",
			expected: "hello",
		},
		{
			name: "rules applied before recursing",
			input: map[string]interface{}{
				"layers": []interface{}{
					map[string]interface{}{"ks": map[string]interface{}{"r": 1.0, "o": 50.0}},
				},
			},
			expected: map[string]interface{}{
				"layers": []interface{}{
					map[string]interface{}{"ks": map[string]interface{}{"o": 50.0}},
				},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.input)
			assert.Equal(t, tc.expected, got)

			// sanitize is idempotent
			assert.Equal(t, got, Sanitize(got))
		})
	}
}

func TestSanitizePreservesSequenceLength(t *testing.T) {
	seq := []interface{}{
		map[string]interface{}{"nm": ""},
		map[string]interface{}{"hd": false},
		1.0, nil, "x",
	}
	got, ok := Sanitize(seq).([]interface{})
	assert.True(t, ok)
	assert.Len(t, got, len(seq))
}
