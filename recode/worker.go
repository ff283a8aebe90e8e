package recode

import (
	"context"
	"encoding/base64"
	"runtime"
	"sync"

	"github.com/lottiecdn/tools/lottie"
	"github.com/lottiecdn/tools/util"
)

// Outcome classifies what happened to one asset.
type Outcome int

const (
	// Ignored means the payload was not an embedded supported image and
	// was not inspected further.
	Ignored Outcome = iota
	// Recoded means the payload was replaced with a smaller encoding.
	Recoded
	// Skipped means recoding failed or produced no improvement; the
	// payload was left untouched.
	Skipped
)

// Result records the outcome for one asset slot.
type Result struct {
	Outcome Outcome
	Reason  string
	OldLen  int // base64 text length before
	NewLen  int // base64 text length after (== OldLen unless Recoded)
}

// AssetJob is one unit of work for a Worker. Each job owns its asset and
// its result slot exclusively, which is what makes the in-place mutation
// safe under concurrency.
type AssetJob struct {
	Ctx    context.Context
	Asset  lottie.Asset
	Result *Result
}

// Worker consumes asset jobs until the channel is closed.
func Worker(wg *sync.WaitGroup, jobs <-chan AssetJob) {
	for j := range jobs {
		*j.Result = processAsset(j.Ctx, j.Asset)
		wg.Done()
	}
}

// OptimizeAssets recodes every candidate asset of one document and returns
// one result per asset, index-aligned with the input. All assets are
// dispatched together and the call returns once every worker is done.
func OptimizeAssets(ctx context.Context, assets []lottie.Asset) []Result {
	results := make([]Result, len(assets))
	if len(assets) == 0 {
		return results
	}

	cpuCount := runtime.NumCPU()
	jobs := make(chan AssetJob, cpuCount)

	var wg sync.WaitGroup
	wg.Add(len(assets))

	for w := 1; w <= cpuCount; w++ {
		go Worker(&wg, jobs)
	}

	for i, asset := range assets {
		jobs <- AssetJob{
			Ctx:    ctx,
			Asset:  asset,
			Result: &results[i],
		}
	}
	close(jobs)

	wg.Wait()
	return results
}

func processAsset(ctx context.Context, asset lottie.Asset) Result {
	payload := asset.Payload()
	if payload == "" {
		return Result{Outcome: Ignored, Reason: "empty payload"}
	}

	uri, ok := lottie.ParseDataURI(payload)
	if !ok {
		return Result{Outcome: Ignored, Reason: "not an embedded image"}
	}

	if asset.IsSequence() {
		return optimizeSequence(ctx, asset, uri)
	}
	return recodeImage(ctx, asset, uri)
}

// recodeImage re-encodes a single image asset as WebP and keeps the result
// only if its base64 text is strictly smaller than the original.
func recodeImage(ctx context.Context, asset lottie.Asset, uri *lottie.DataURI) Result {
	quality := QualityFor(uri.B64Len)
	util.Debugf(ctx, "asset %s: recoding %s (%d chars) at quality %d\n",
		asset.ID(), uri.Format, uri.B64Len, quality)

	out, err := WebP(uri.Format, uri.Data, quality)
	if err != nil {
		util.Warnf(ctx, "asset %s: %s\n", asset.ID(), err)
		return Result{Outcome: Skipped, Reason: err.Error(), OldLen: uri.B64Len, NewLen: uri.B64Len}
	}

	newLen := base64.StdEncoding.EncodedLen(len(out))
	if newLen >= uri.B64Len {
		return Result{Outcome: Skipped, Reason: "no improvement", OldLen: uri.B64Len, NewLen: uri.B64Len}
	}

	asset.SetPayload(lottie.FormatDataURI("webp", out))
	return Result{Outcome: Recoded, OldLen: uri.B64Len, NewLen: newLen}
}

// optimizeSequence recompresses a multi-frame asset in its original codec.
// Only uncompressed-source (PNG) sequences are candidates; anything else
// passes through unchanged.
func optimizeSequence(ctx context.Context, asset lottie.Asset, uri *lottie.DataURI) Result {
	if uri.Format != "png" {
		return Result{Outcome: Ignored, Reason: "sequence is not png"}
	}

	util.Debugf(ctx, "asset %s: recompressing png sequence (%d chars)\n", asset.ID(), uri.B64Len)

	out, err := PNG(uri.Data)
	if err != nil {
		util.Warnf(ctx, "asset %s: %s\n", asset.ID(), err)
		return Result{Outcome: Skipped, Reason: err.Error(), OldLen: uri.B64Len, NewLen: uri.B64Len}
	}

	newLen := base64.StdEncoding.EncodedLen(len(out))
	if newLen >= uri.B64Len {
		return Result{Outcome: Skipped, Reason: "no optimization possible", OldLen: uri.B64Len, NewLen: uri.B64Len}
	}

	asset.SetPayload(lottie.FormatDataURI("png", out))
	return Result{Outcome: Recoded, OldLen: uri.B64Len, NewLen: newLen}
}
