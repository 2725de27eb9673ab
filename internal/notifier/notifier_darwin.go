//go:build darwin

package notifier

import "desknotify/internal/notifier/platform"

// NewPlatformNotifier creates the macOS notifier.
func NewPlatformNotifier() (Notifier, error) {
	return platform.NewMacOSNotifier(), nil
}
