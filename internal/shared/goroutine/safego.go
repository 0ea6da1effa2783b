// Package goroutine launches goroutines with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/reminderly/reminderly/internal/shared/logger"
)

// SafeGo launches fn in a goroutine. A panic is logged with its stack trace
// instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name, nil)
		fn()
	}()
}

// SafeGoErr runs fn in a goroutine and delivers its error on the returned
// channel. A panic is logged and delivered as an error. The channel is
// buffered so the goroutine never blocks when the caller stops waiting.
func SafeGoErr(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer recoverAndLog(log, name, done)
		done <- fn()
	}()
	return done
}

func recoverAndLog(log logger.Interface, name string, done chan<- error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("goroutine panicked",
		"goroutine", name,
		"panic", fmt.Sprintf("%v", r),
		"stack", string(debug.Stack()),
	)
	if done != nil {
		done <- fmt.Errorf("%s panicked: %v", name, r)
	}
}
