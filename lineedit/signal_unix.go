//go:build !windows

package lineedit

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// terminationSignals end the process while ReadLine may be blocked in raw
// mode. SIGINT is not listed: raw mode delivers Ctrl-C as a key.
var terminationSignals = []os.Signal{syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT}

// restoreOnSignal restores m when one of sigs arrives, then raises the
// signal again so the process terminates (or other handlers run) as it
// would have without the editor. The returned function stops watching.
func restoreOnSignal(m ModeController, logger *slog.Logger, sigs ...os.Signal) func() {
	if len(sigs) == 0 {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	done := make(chan struct{})

	go func() {
		select {
		case sig := <-ch:
			signal.Stop(ch)
			if err := m.Disable(); err != nil {
				logger.Error("terminal mode not restored", "signal", sig, "error", err)
			} else {
				logger.Debug("terminal mode restored on signal", "signal", sig)
			}
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				p.Signal(sig)
			}
		case <-done:
		}
	}()

	return func() {
		signal.Stop(ch)
		close(done)
	}
}
