package notification

import "desknotify/internal/notifier"

// fakeNotifier records messages and hands out increasing ids, or keeps an
// id when the message replaces one.
type fakeNotifier struct {
	messages []notifier.Message
	lastID   uint32
	err      error
}

func (f *fakeNotifier) Notify(msg notifier.Message) (uint32, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.messages = append(f.messages, msg)
	if msg.ReplacesID != 0 {
		return msg.ReplacesID, nil
	}
	f.lastID++
	return f.lastID, nil
}
