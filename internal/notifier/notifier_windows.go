//go:build windows

package notifier

import "desknotify/internal/notifier/platform"

// NewPlatformNotifier creates the toast notifier.
func NewPlatformNotifier() (Notifier, error) {
	return platform.NewWindowsNotifier(), nil
}
