package service

import (
	"context"
	"sync"

	"desknotify/internal/event"
	"desknotify/internal/notifier"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notifier.Message
	lastID   uint32
	err      error
}

func (r *recordingNotifier) Notify(msg notifier.Message) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.messages = append(r.messages, msg)
	if msg.ReplacesID != 0 {
		return msg.ReplacesID, nil
	}
	r.lastID++
	return r.lastID, nil
}

func (r *recordingNotifier) sent() []notifier.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notifier.Message(nil), r.messages...)
}

func ptr[T any](v T) *T { return &v }

// blockingRepo never yields an event until its context ends.
type blockingRepo struct{}

func (blockingRepo) Next(ctx context.Context) (event.Event, error) {
	<-ctx.Done()
	return event.Event{}, ctx.Err()
}
