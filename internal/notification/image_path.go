//go:build !darwin

package notification

var _ ImagePathSetter = (*Notification)(nil)

// SetImagePath sets an image shown alongside the notification.
func (n *Notification) SetImagePath(path string) *Notification {
	n.imagePath = &path
	return n
}
