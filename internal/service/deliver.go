package service

import "desknotify/internal/notification"

// Deliver shows n through whichever Show the build provides. hasID reports
// whether the platform returned a server-assigned id.
func Deliver(n *notification.Notification) (id uint32, hasID bool, err error) {
	switch s := any(n).(type) {
	case notification.HandleShower:
		h, showErr := s.Show()
		if showErr != nil {
			return 0, false, showErr
		}
		if identified, ok := any(h).(notification.Identifier); ok {
			return identified.ID(), true, nil
		}
		return 0, false, nil
	case notification.Shower:
		return 0, false, s.Show()
	}
	return 0, false, notification.ErrUnsupported
}
