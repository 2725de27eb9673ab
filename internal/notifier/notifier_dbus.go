//go:build unix && !darwin

package notifier

import "desknotify/internal/notifier/platform"

// NewPlatformNotifier connects to the session bus.
func NewPlatformNotifier() (Notifier, error) {
	n, err := platform.NewDBusNotifier()
	if err != nil {
		return nil, err
	}
	return n, nil
}

// NewServerInfoProvider connects to the session bus.
func NewServerInfoProvider() (ServerInfoProvider, error) {
	n, err := platform.NewDBusNotifier()
	if err != nil {
		return nil, err
	}
	return n, nil
}
