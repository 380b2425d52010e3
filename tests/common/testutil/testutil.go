//go:build unit || e2e

package testutil

import (
	"io"
	"log/slog"
	"time"
)

// FixedNow is the reference "now" for tests that pin the clock.
var FixedNow = time.Date(2030, 6, 15, 9, 30, 0, 0, time.UTC)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
