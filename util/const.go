package util

import "time"

const (
	// DefaultInputDir is where animation documents are read from when
	// INPUT_DIR is unset.
	DefaultInputDir = "./input"

	// DefaultOutputDir is where optimized documents are written to when
	// OUTPUT_DIR is unset.
	DefaultOutputDir = "./output"

	// DocumentPattern matches the files in the input directory that are
	// treated as animation documents.
	DocumentPattern = "*.json"

	// SentryFlushTime is the maximum time to flush events to Sentry.
	SentryFlushTime = time.Second * 5
)
