// Package notification builds desktop notifications and hands them to the
// platform backend.
//
// Most fields are empty by default; only the app name is initialized, with
// the name of the current executable. Setters modify the notification in
// place and return it, so calls can be chained:
//
//	n := notification.New().SetSummary("Build finished").SetBody("Target X succeeded")
//
// Some setters only exist on some platforms. SetUrgency is only available
// where notifications go over D-Bus, and SetImagePath is absent on macOS.
// Code that must build everywhere can check for them with the capability
// interfaces in capability.go.
package notification

import (
	"os"
	"path/filepath"

	"desknotify/internal/notifier"
)

// Notification is a draft desktop notification. It is not safe for
// concurrent use.
type Notification struct {
	appName   string
	summary   string
	subtitle  *string
	body      string
	icon      string
	imagePath *string
	soundName *string
	timeout   Timeout
	urgency   *Urgency
	id        *uint32

	notifier notifier.Notifier
}

// Option configures a Notification at construction time.
type Option func(*Notification)

// WithNotifier replaces the platform backend used by Show.
func WithNotifier(n notifier.Notifier) Option {
	return func(notif *Notification) {
		notif.notifier = n
	}
}

// New returns an empty draft.
func New(opts ...Option) *Notification {
	n := &Notification{appName: exeName()}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// AppName is used by some desktop environments to group notifications.
func (n *Notification) AppName() string { return n.appName }

// Summary returns the single-line summary.
func (n *Notification) Summary() string { return n.summary }

// Subtitle is only shown on macOS.
func (n *Notification) Subtitle() (string, bool) { return deref(n.subtitle) }

// Body returns the multi-line content.
func (n *Notification) Body() string { return n.body }

// Icon returns the icon theme name or file path.
func (n *Notification) Icon() string { return n.icon }

// ImagePath reports the image path, if one was set.
func (n *Notification) ImagePath() (string, bool) { return deref(n.imagePath) }

// SoundName reports the sound to play, if one was set.
func (n *Notification) SoundName() (string, bool) { return deref(n.soundName) }

// Timeout returns the boundary encoding of the timeout. See TimeoutValue
// for the typed form.
func (n *Notification) Timeout() int32 { return n.timeout.Encode() }

// TimeoutValue returns the typed timeout.
func (n *Notification) TimeoutValue() Timeout { return n.timeout }

// Urgency reports the urgency, if one was set.
func (n *Notification) Urgency() (Urgency, bool) { return deref(n.urgency) }

// ID reports the id of the notification to replace, if one was set.
func (n *Notification) ID() (uint32, bool) { return deref(n.id) }

// SetAppName overwrites the app name.
func (n *Notification) SetAppName(name string) *Notification {
	n.appName = name
	return n
}

// SetSummary sets the single line that usually acts as the title.
func (n *Notification) SetSummary(summary string) *Notification {
	n.summary = summary
	return n
}

// SetSubtitle sets the subtitle. It is not part of the freedesktop
// specification and only macOS displays it.
func (n *Notification) SetSubtitle(subtitle string) *Notification {
	n.subtitle = &subtitle
	return n
}

// SetBody sets the multi-line content. Servers may support simple markup.
func (n *Notification) SetBody(body string) *Notification {
	n.body = body
	return n
}

// SetIcon sets an icon theme name or a file path. macOS ignores it.
func (n *Notification) SetIcon(icon string) *Notification {
	n.icon = icon
	return n
}

// AutoIcon sets the icon to the name of the current executable.
func (n *Notification) AutoIcon() *Notification {
	n.icon = exeName()
	return n
}

// SetSoundName sets a sound to play; its meaning depends on the platform.
func (n *Notification) SetSoundName(name string) *Notification {
	n.soundName = &name
	return n
}

// SetID makes Show replace the notification with this id instead of
// creating a new one, where the platform supports it.
func (n *Notification) SetID(id uint32) *Notification {
	n.id = &id
	return n
}

// SetTimeout sets the lifetime from its boundary encoding: TimeoutDefault,
// TimeoutNever, or a non-negative number of milliseconds. Any other value
// fails with ErrInvalidArgument and leaves the draft unchanged.
func (n *Notification) SetTimeout(v int32) (*Notification, error) {
	t, err := DecodeTimeout(v)
	if err != nil {
		return n, err
	}
	n.timeout = t
	return n, nil
}

// SetTimeoutValue sets the lifetime. Servers often ignore it.
func (n *Notification) SetTimeoutValue(t Timeout) *Notification {
	n.timeout = t
	return n
}

// Finalize returns n unchanged.
//
// It mirrors the builder API of the underlying notification library and
// performs no validation. Whether it should seal the draft is an open
// product question; see DESIGN.md.
func (n *Notification) Finalize() *Notification {
	return n
}

// deliver is the single delivery attempt behind every Show variant.
func (n *Notification) deliver() (uint32, error) {
	backend := n.notifier
	if backend == nil {
		var err error
		backend, err = notifier.NewPlatformNotifier()
		if err != nil {
			return 0, &DeliveryError{Err: err}
		}
	}

	id, err := backend.Notify(n.message())
	if err != nil {
		return 0, &DeliveryError{Err: err}
	}
	return id, nil
}

func (n *Notification) message() notifier.Message {
	msg := notifier.Message{
		AppName: n.appName,
		Summary: n.summary,
		Body:    n.body,
		Icon:    n.icon,
		Expire:  n.timeout.Expire(),
	}
	msg.Subtitle, _ = n.Subtitle()
	msg.ImagePath, _ = n.ImagePath()
	msg.SoundName, _ = n.SoundName()
	msg.ReplacesID, _ = n.ID()
	if u, ok := n.Urgency(); ok {
		level := uint8(u)
		msg.Urgency = &level
	}
	return msg
}

// exeName is the base name of the running executable, with trimExeSuffix
// applied.
func exeName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return trimExeSuffix(filepath.Base(exe))
}

func deref[T any](p *T) (T, bool) {
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}
