package virtkit

import (
	"log/slog"
	"os"
)

// virtLogLevel controls the log level for virtkit debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var virtLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for virtkit.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		virtLogLevel.Set(slog.LevelDebug)
	} else {
		virtLogLevel.Set(slog.LevelInfo)
	}
}

// virtLogger is the logger for virtualization debugging.
// Kept out of the per-scroll resolve path; only lifecycle events log.
var virtLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: virtLogLevel}))

func init() {
	if os.Getenv("VIRTKIT_DEBUG") != "" {
		virtLogLevel.Set(slog.LevelDebug)
	}
}
