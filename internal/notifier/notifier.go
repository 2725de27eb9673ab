// Package notifier is the boundary between the notification builder and the
// platform backends in notifier/platform.
package notifier

import (
	"errors"
	"fmt"

	"desknotify/internal/notifier/platform"
)

type (
	Message    = platform.Message
	ServerInfo = platform.ServerInfo
)

// ErrUnsupportedPlatform is returned by the constructors when the build
// has no backend for the requested operation.
var ErrUnsupportedPlatform = fmt.Errorf("no notification backend for this platform: %w", errors.ErrUnsupported)
