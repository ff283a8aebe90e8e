package main

import (
	"fmt"
	"log"
	"path"

	"github.com/lottiecdn/tools/pipeline"
	"github.com/lottiecdn/tools/sentry"
	"github.com/lottiecdn/tools/util"
)

func init() {
	sentry.Init()
}

var (
	// initialize standard debug logger
	logger = util.GetStandardLogger()

	// default context (no logger prefix)
	defaultCtx = util.ContextWithEntries(util.GetStandardEntries("", logger)...)
)

func main() {
	defer sentry.PanicHandler()

	inputDir := util.GetInputDir()
	outputDir := util.GetOutputDir()

	// a missing or unreadable input directory is fatal to the run
	files, err := util.ListFilesMatch(defaultCtx, inputDir, util.DocumentPattern)
	if err != nil {
		log.Fatalf("could not list input files: %s", err)
	}

	util.Printf(defaultCtx, "found %d documents in %s\n", len(files), inputDir)

	results := make([]*pipeline.FileResult, 0, len(files))
	failed := 0

	for i, file := range files {
		ctx := util.WithPrefix(defaultCtx, file)
		util.Printf(ctx, "[%d/%d]\n", i+1, len(files))

		res, err := pipeline.Process(ctx, path.Join(inputDir, file), path.Join(outputDir, file))
		if err != nil {
			util.Errf(ctx, "%s\n", err)
			sentry.NotifyError(err)
			failed++
			continue
		}
		results = append(results, res)
	}

	fmt.Println(pipeline.Summary(results))
	util.Printf(defaultCtx, "done: %d optimized, %d failed\n", len(results), failed)
}
