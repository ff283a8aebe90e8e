package sentry

import (
	"os"

	"github.com/lottiecdn/tools/util"

	"github.com/getsentry/sentry-go"
)

// Init Sentry client
func Init() {
	sentryDsn := os.Getenv("SENTRY_DSN")
	if sentryDsn != "" {
		util.Check(sentry.Init(sentry.ClientOptions{
			Dsn: sentryDsn,
		}))
	}
}

// NotifyError records a recovered, non-fatal error (e.g. a document that
// failed to process) without interrupting the batch.
func NotifyError(err error) {
	sentry.CurrentHub().CaptureException(err)
	sentry.Flush(util.SentryFlushTime)
}

// PanicHandler registers panic handler to record the error in Sentry
func PanicHandler() {
	err := recover()

	if err != nil {
		sentry.CurrentHub().Recover(err)
		sentry.Flush(util.SentryFlushTime)
		panic(err)
	}
}
