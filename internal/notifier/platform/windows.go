//go:build windows

package platform

import (
	"path/filepath"

	"github.com/go-toast/toast"
)

// longToastAfter is the requested lifetime past which a long toast is used.
const longToastAfter = 7000

// WindowsNotifier implements desktop notifications for Windows as toasts.
type WindowsNotifier struct{}

func NewWindowsNotifier() *WindowsNotifier {
	return &WindowsNotifier{}
}

// Notify pushes a toast. Toasts have no server id and no replacement, so
// ReplacesID is ignored and the returned id is always 0.
func (n *WindowsNotifier) Notify(msg Message) (uint32, error) {
	t := toastNotification(msg)
	return 0, t.Push()
}

func toastNotification(msg Message) toast.Notification {
	t := toast.Notification{
		AppID:    msg.AppName,
		Title:    msg.Summary,
		Message:  msg.Body,
		Icon:     toastIcon(msg),
		Duration: toast.Short,
	}
	if msg.Expire == 0 || msg.Expire > longToastAfter {
		t.Duration = toast.Long
	}
	if msg.SoundName != "" {
		if audio, err := toast.Audio(msg.SoundName); err == nil {
			t.Audio = audio
		}
	}
	return t
}

// toastIcon only accepts files; icon theme names mean nothing here.
func toastIcon(msg Message) string {
	if msg.ImagePath != "" {
		return msg.ImagePath
	}
	if filepath.IsAbs(msg.Icon) {
		return msg.Icon
	}
	return ""
}
