//go:build !unix && !windows

package notifier

func NewPlatformNotifier() (Notifier, error) {
	return nil, ErrUnsupportedPlatform
}
