package util

import (
	"context"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/karrick/godirwalk"
)

// Determines if a file path contains a hidden file or directory.
// Either it starts with . or contains '/.' to be considered hidden.
func isHidden(fp string) bool {
	return strings.HasPrefix(fp, ".") || strings.Contains(fp, "/.")
}

// ListFilesMatch lists the files within base whose path relative to base
// matches pattern, sorted lexicographically for a deterministic processing
// order. Hidden files and directories are ignored.
// It utilizes the fast godirwalk library found here: https://github.com/karrick/godirwalk
func ListFilesMatch(ctx context.Context, base string, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}

	list := make([]string, 0)

	err = godirwalk.Walk(base, &godirwalk.Options{
		Callback: func(fp string, de *godirwalk.Dirent) error {
			// trim a full path to a path relative to the base directory
			fp = strings.TrimLeft(strings.TrimPrefix(fp, base), "/")
			if de.IsDir() || isHidden(fp) || fp == "" {
				return nil
			}
			if !g.Match(fp) {
				Debugf(ctx, "ignoring %s (does not match %s)\n", fp, pattern)
				return nil
			}
			list = append(list, fp)
			return nil
		},
		FollowSymbolicLinks: true,
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(list)
	return list, nil
}
