//go:build unix

package notification

var _ HandleShower = (*Notification)(nil)

// Show delivers the notification. Each call is an independent delivery;
// with an id set it replaces the earlier notification. Failures are
// returned as *DeliveryError.
func (n *Notification) Show() (*Handle, error) {
	id, err := n.deliver()
	if err != nil {
		return nil, err
	}
	return &Handle{id: id}, nil
}
