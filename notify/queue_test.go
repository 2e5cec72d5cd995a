package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSender struct {
	mu       sync.Mutex
	failures int
	sent     []string
	attempts int
}

func (f *fakeSender) Send(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.attempts <= f.failures {
		return errors.New("boom")
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeSender) delivered() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func TestQueue_DeliversEnqueuedMessage(t *testing.T) {
	sender := &fakeSender{}
	q := NewQueue(sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		q.Run(ctx)
		close(done)
	}()

	q.Enqueue("hello")

	deadline := time.After(5 * time.Second)
	for len(sender.delivered()) == 0 {
		select {
		case <-deadline:
			t.Fatal("message was not delivered")
		case <-time.After(10 * time.Millisecond):
		}
	}
	if got := sender.delivered(); got[0] != "hello" {
		t.Fatalf("delivered %q, want %q", got[0], "hello")
	}

	cancel()
	<-done
}

func TestQueue_RetriesWithBackoff(t *testing.T) {
	sender := &fakeSender{failures: 1}
	q := NewQueue(sender)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go q.Run(ctx)

	q.Enqueue("retry me")

	deadline := time.After(10 * time.Second)
	for len(sender.delivered()) == 0 {
		select {
		case <-deadline:
			t.Fatal("message was not delivered after retry")
		case <-time.After(50 * time.Millisecond):
		}
	}

	sender.mu.Lock()
	attempts := sender.attempts
	sender.mu.Unlock()
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestQueue_EnqueueNeverBlocksWhenFull(t *testing.T) {
	// no worker running, so the buffer fills up
	q := NewQueue(&fakeSender{})

	done := make(chan struct{})
	go func() {
		for i := 0; i < queueDepth+10; i++ {
			q.Enqueue("x")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
