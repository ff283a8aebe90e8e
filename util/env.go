package util

import (
	"os"
)

// EnvOr gets an environment variable, falling back to a default
// if it is nonexistent or empty.
func EnvOr(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	return fallback
}

// EnvExists determines if an environment variable exists.
func EnvExists(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// IsDebug returns true if debug mode is enabled based
// on an environment variable.
func IsDebug() bool {
	return EnvExists("DEBUG")
}

// GetInputDir gets the directory scanned for animation documents.
func GetInputDir() string {
	return EnvOr("INPUT_DIR", DefaultInputDir)
}

// GetOutputDir gets the directory optimized documents are written to.
func GetOutputDir() string {
	return EnvOr("OUTPUT_DIR", DefaultOutputDir)
}
