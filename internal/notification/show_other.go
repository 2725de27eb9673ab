//go:build !unix

package notification

var _ Shower = (*Notification)(nil)

// Show delivers the notification. Failures are returned as *DeliveryError.
func (n *Notification) Show() error {
	_, err := n.deliver()
	return err
}
