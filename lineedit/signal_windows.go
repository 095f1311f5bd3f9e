package lineedit

import (
	"log/slog"
	"os"
)

// The console restores its input mode when the process exits, so there is
// nothing to watch for.
var terminationSignals []os.Signal

func restoreOnSignal(m ModeController, logger *slog.Logger, sigs ...os.Signal) func() {
	return func() {}
}
