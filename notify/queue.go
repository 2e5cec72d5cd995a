package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sender delivers one notification message.
type Sender interface {
	Send(ctx context.Context, text string) error
}

const (
	queueDepth  = 64
	maxAttempts = 5
	baseBackoff = time.Second
	maxBackoff  = 30 * time.Second
)

// Queue decouples order intake from notification delivery. Enqueue never
// blocks and never fails the caller; a background worker retries failed
// deliveries with exponential backoff. Delivery is best effort: once the
// order is durably stored, notifier health must not affect the response.
type Queue struct {
	sender Sender
	jobs   chan string
}

func NewQueue(sender Sender) *Queue {
	return &Queue{sender: sender, jobs: make(chan string, queueDepth)}
}

// Enqueue hands a message to the worker. A full queue drops the message.
func (q *Queue) Enqueue(text string) {
	select {
	case q.jobs <- text:
	default:
		zap.L().Warn("notify: queue full, dropping message")
	}
}

// Run delivers queued messages until ctx is cancelled.
func (q *Queue) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-q.jobs:
			q.deliver(ctx, text)
		}
	}
}

func (q *Queue) deliver(ctx context.Context, text string) {
	backoff := baseBackoff
	for attempt := 1; ; attempt++ {
		err := q.sender.Send(ctx, text)
		if err == nil {
			return
		}
		if attempt >= maxAttempts {
			zap.L().Error("notify: giving up on message",
				zap.Int("attempts", attempt), zap.Error(err))
			return
		}
		zap.L().Warn("notify: delivery failed, will retry",
			zap.Int("attempt", attempt), zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}
