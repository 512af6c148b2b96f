package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
)

// forceExit ends the process on a second interrupt.
var forceExit = os.Exit

// interruptContext returns a context cancelled by the first interrupt.
// A search in progress cannot observe the cancellation, so a second
// interrupt exits at once with status 130.
func interruptContext(parent context.Context, logger *log.Logger, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt, syscall.SIGTERM}
	}

	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 2)
	done := make(chan struct{})
	signal.Notify(sigs, signals...)

	go func() {
		select {
		case <-sigs:
		case <-done:
			return
		}
		logger.Warn("interrupted, finishing current work (interrupt again to quit now)")
		cancel()

		select {
		case <-sigs:
			forceExit(130)
		case <-done:
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(done)
			cancel()
		})
	}
	return ctx, stop
}
