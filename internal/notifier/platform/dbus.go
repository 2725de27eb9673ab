//go:build unix && !darwin

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// DBusNotifier implements desktop notifications over the freedesktop
// notification interface on the session bus.
type DBusNotifier struct {
	obj dbus.BusObject
}

// NewDBusNotifier connects to the shared session bus connection. The
// connection is not closed by the notifier.
func NewDBusNotifier() (*DBusNotifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return newDBusNotifier(conn.Object(dbusNotifyDest, dbusNotifyPath)), nil
}

func newDBusNotifier(obj dbus.BusObject) *DBusNotifier {
	return &DBusNotifier{obj: obj}
}

// Notify calls
// Notify(app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout) -> id.
func (n *DBusNotifier) Notify(msg Message) (uint32, error) {
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		msg.AppName,
		msg.ReplacesID,
		msg.Icon,
		msg.Summary,
		msg.Body,
		[]string{},
		dbusHints(msg),
		msg.Expire,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// ServerInformation calls GetServerInformation.
func (n *DBusNotifier) ServerInformation() (ServerInfo, error) {
	call := n.obj.Call(dbusNotifyInterface+".GetServerInformation", 0)
	if call.Err != nil {
		return ServerInfo{}, call.Err
	}

	var info ServerInfo
	if err := call.Store(&info.Name, &info.Vendor, &info.Version, &info.SpecVersion); err != nil {
		return ServerInfo{}, err
	}
	return info, nil
}

// Capabilities calls GetCapabilities.
func (n *DBusNotifier) Capabilities() ([]string, error) {
	call := n.obj.Call(dbusNotifyInterface+".GetCapabilities", 0)
	if call.Err != nil {
		return nil, call.Err
	}

	var caps []string
	if err := call.Store(&caps); err != nil {
		return nil, err
	}
	return caps, nil
}

// dbusHints only carries the hints the message sets. Subtitle has no
// freedesktop equivalent and is dropped.
func dbusHints(msg Message) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{}
	if msg.Urgency != nil {
		hints["urgency"] = dbus.MakeVariant(*msg.Urgency)
	}
	if msg.ImagePath != "" {
		hints["image-path"] = dbus.MakeVariant(msg.ImagePath)
	}
	if msg.SoundName != "" {
		hints["sound-name"] = dbus.MakeVariant(msg.SoundName)
	}
	return hints
}
