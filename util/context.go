package util

import (
	"context"
)

// ContextKey is the key type used for context.WithValue().
type ContextKey int

// ContextEntry represents a key-value entry for a context.
type ContextEntry struct {
	Key   ContextKey
	Value interface{}
}

const (
	// LoggerPrefix is the key to the string that is outputted first when logging.
	// For example, the LoggerPrefix may represent the file currently being
	// optimized, so a line logged while recoding an asset reads
	// "anim.json: asset img_0 ...".
	LoggerPrefix ContextKey = iota

	// Logger is the key for a *log.Logger.
	Logger

	// Debug is the LogFunc that is called when outputting a debug statement.
	Debug

	// Warn is the LogFunc that is called when outputting a warning.
	Warn

	// Err is the LogFunc that is called when outputting an error.
	Err
)

// ContextWithEntries creates a context with a variadic number of key-value
// entries. Internally, this context's root node is context.Background() and
// a new context is created for each new key-value entry.
func ContextWithEntries(entries ...ContextEntry) context.Context {
	parent := context.Background()
	for _, entry := range entries {
		parent = context.WithValue(parent, entry.Key, entry.Value)
	}
	return parent
}

// WithPrefix derives a context whose log lines are prefixed with prefix.
func WithPrefix(ctx context.Context, prefix string) context.Context {
	return context.WithValue(ctx, LoggerPrefix, prefix)
}
