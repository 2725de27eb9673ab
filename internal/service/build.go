package service

import (
	"fmt"

	"desknotify/internal/event"
	"desknotify/internal/notification"
)

// Build turns an event into a draft. Fields set on ev override defaults.
// Timeout and urgency are validated with their boundary encodings; asking
// for urgency or an image path on a platform without them fails with
// notification.ErrUnsupported.
func Build(ev, defaults event.Event, opts ...notification.Option) (*notification.Notification, error) {
	ev = merge(defaults, ev)
	n := notification.New(opts...)

	if ev.AppName != "" {
		n.SetAppName(ev.AppName)
	}
	n.SetSummary(ev.Summary).SetBody(ev.Body)
	if ev.Icon != "" {
		n.SetIcon(ev.Icon)
	}
	if ev.Subtitle != nil {
		n.SetSubtitle(*ev.Subtitle)
	}
	if ev.SoundName != nil {
		n.SetSoundName(*ev.SoundName)
	}
	if ev.ID != nil {
		n.SetID(*ev.ID)
	}
	if ev.Timeout != nil {
		if _, err := n.SetTimeout(*ev.Timeout); err != nil {
			return nil, err
		}
	}
	if ev.Urgency != nil {
		setter, ok := any(n).(notification.UrgencySetter)
		if !ok {
			return nil, fmt.Errorf("urgency: %w", notification.ErrUnsupported)
		}
		if _, err := setter.SetUrgency(*ev.Urgency); err != nil {
			return nil, err
		}
	}
	if ev.ImagePath != nil {
		setter, ok := any(n).(notification.ImagePathSetter)
		if !ok {
			return nil, fmt.Errorf("image path: %w", notification.ErrUnsupported)
		}
		setter.SetImagePath(*ev.ImagePath)
	}
	return n.Finalize(), nil
}

func merge(defaults, ev event.Event) event.Event {
	if ev.AppName == "" {
		ev.AppName = defaults.AppName
	}
	if ev.Icon == "" {
		ev.Icon = defaults.Icon
	}
	if ev.Subtitle == nil {
		ev.Subtitle = defaults.Subtitle
	}
	if ev.ImagePath == nil {
		ev.ImagePath = defaults.ImagePath
	}
	if ev.SoundName == nil {
		ev.SoundName = defaults.SoundName
	}
	if ev.Timeout == nil {
		ev.Timeout = defaults.Timeout
	}
	if ev.Urgency == nil {
		ev.Urgency = defaults.Urgency
	}
	if ev.ID == nil {
		ev.ID = defaults.ID
	}
	return ev
}
