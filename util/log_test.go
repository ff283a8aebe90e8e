package util

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureContext(buf *bytes.Buffer, prefix string) context.Context {
	return ContextWithEntries(
		ContextEntry{Key: LoggerPrefix, Value: prefix},
		ContextEntry{Key: Logger, Value: log.New(buf, "", 0)},
	)
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer

	Printf(captureContext(&buf, "anim.json"), "%d -> %d bytes\n", 100, 80)
	assert.Equal(t, "anim.json: 100 -> 80 bytes\n", buf.String())

	buf.Reset()
	Printf(captureContext(&buf, ""), "done\n")
	assert.Equal(t, "done\n", buf.String())
}

func TestPrintfBareContext(t *testing.T) {
	// contexts without a logger entry fall back to the standard logger
	assert.NotPanics(t, func() {
		Printf(context.Background(), "no logger configured\n")
	})
}

func TestWarnf(t *testing.T) {
	var warnings []string
	ctx := ContextWithEntries(ContextEntry{
		Key: Warn,
		Value: LogFunc(func(_ context.Context, format string, v ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, v...))
		}),
	})

	Warnf(ctx, "asset %s: %s\n", "img_0", "could not decode png")
	assert.Equal(t, []string{"asset img_0: could not decode png\n"}, warnings)

	// without a Warn entry the warning degrades to debug output
	assert.NotPanics(t, func() {
		Warnf(context.Background(), "nobody listening\n")
	})
}
