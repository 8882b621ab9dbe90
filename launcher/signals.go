package launcher

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// relayedSignals reach docker through the shared terminal; docker picks the
// exit status for them.
var relayedSignals = []os.Signal{os.Interrupt, syscall.SIGQUIT}

// ignoreInterrupts stops relayedSignals from terminating the process until the
// returned func is called. Each received signal is passed to onSignal.
// The signals are caught rather than ignored: an ignored disposition would
// be inherited by docker.
func ignoreInterrupts(onSignal func(os.Signal)) (stop func()) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, relayedSignals...)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for sig := range ch {
			if onSignal != nil {
				onSignal(sig)
			}
		}
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			signal.Stop(ch)
			close(ch)
			<-done
		})
	}
}
