package email

import (
	"context"
	"time"
)

// SendObserver records the outcome and latency of each send.
type SendObserver interface {
	EmailSent(provider string, success bool, elapsed time.Duration)
}

type instrumentedSender struct {
	next     Sender
	observer SendObserver
}

// Instrument wraps next so every send is reported to observer.
func Instrument(next Sender, observer SendObserver) Sender {
	if observer == nil {
		return next
	}
	return &instrumentedSender{next: next, observer: observer}
}

func (s *instrumentedSender) Provider() string {
	return s.next.Provider()
}

func (s *instrumentedSender) Send(ctx context.Context, msg Message) (*SendResult, error) {
	start := time.Now()
	result, err := s.next.Send(ctx, msg)
	s.observer.EmailSent(s.next.Provider(), err == nil, time.Since(start))
	return result, err
}
