//go:build unix && !darwin

package notification

var (
	_ UrgencySetter = (*Notification)(nil)
	_ Identifier    = (*Handle)(nil)
)

// ID returns the id the notification server assigned.
func (h *Handle) ID() uint32 { return h.id }

// SetUrgency sets the urgency from its boundary encoding: UrgencyLow (0),
// UrgencyNormal (1) or UrgencyCritical (2). Any other value fails with
// ErrInvalidArgument and leaves the draft unchanged.
func (n *Notification) SetUrgency(v int) (*Notification, error) {
	u, err := DecodeUrgency(v)
	if err != nil {
		return n, err
	}
	n.urgency = &u
	return n, nil
}

// SetUrgencyValue is the typed form of SetUrgency.
func (n *Notification) SetUrgencyValue(u Urgency) *Notification {
	n.urgency = &u
	return n
}
