// Package pipeline processes one animation document end to end: parse,
// recode embedded images, sanitize and round the tree, then write the
// compact result. Files are independent; a failure in one never stops
// the batch.
package pipeline

import (
	"context"
	"os"
	"path"

	"github.com/lottiecdn/tools/lottie"
	"github.com/lottiecdn/tools/recode"
	"github.com/lottiecdn/tools/sanitize"
	"github.com/lottiecdn/tools/util"

	"github.com/pkg/errors"
)

// FileResult aggregates the per-asset outcomes and byte counts of one
// processed document, for reporting.
type FileResult struct {
	File     string
	Version  string
	InBytes  int64
	OutBytes int64
	Recoded  int
	Skipped  int
	Ignored  int
}

// Process optimizes the document at inPath and writes it to outPath.
// On error no output file is written. Panics anywhere in the sequence are
// caught here so one broken document cannot take down the batch.
func Process(ctx context.Context, inPath, outPath string) (res *FileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, errors.Errorf("panic while processing %s: %v", inPath, r)
		}
	}()

	data, err := os.ReadFile(inPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not read document")
	}

	doc, err := lottie.Parse(data)
	if err != nil {
		return nil, err
	}

	res = &FileResult{
		File:    path.Base(inPath),
		Version: doc.Version(),
		InBytes: int64(len(data)),
	}
	if res.Version != "" {
		util.Debugf(ctx, "bodymovin v%s\n", res.Version)
	}

	assets := doc.Assets()
	for i, r := range recode.OptimizeAssets(ctx, assets) {
		switch r.Outcome {
		case recode.Recoded:
			res.Recoded++
			util.Printf(ctx, "asset %s: %d -> %d chars (%d%% of original)\n",
				assets[i].ID(), r.OldLen, r.NewLen, r.NewLen*100/r.OldLen)
		case recode.Skipped:
			res.Skipped++
			util.Printf(ctx, "asset %s: skipped (%s)\n", assets[i].ID(), r.Reason)
		default:
			res.Ignored++
			util.Debugf(ctx, "asset %s: ignored (%s)\n", assets[i].ID(), r.Reason)
		}
	}

	cleaned := sanitize.Round(sanitize.Sanitize(map[string]interface{}(doc)))
	root, ok := cleaned.(map[string]interface{})
	util.Assert(ok) // sanitizing and rounding preserve the tree's shape

	out, err := lottie.Serialize(lottie.Document(root))
	if err != nil {
		return nil, err
	}
	res.OutBytes = int64(len(out))

	if err := os.MkdirAll(path.Dir(outPath), 0755); err != nil {
		return nil, errors.Wrap(err, "could not create output directory")
	}
	if err := os.WriteFile(outPath, out, 0644); err != nil {
		return nil, errors.Wrap(err, "could not write document")
	}

	util.Printf(ctx, "%d -> %d bytes (%d%% of original)\n",
		res.InBytes, res.OutBytes, res.OutBytes*100/res.InBytes)
	return res, nil
}
