//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	objPath   = "/org/freedesktop/Notifications"
	notifyM   = busName + ".Notify"
	closeM    = busName + ".CloseNotification"
	appName   = "lagu"
	desktopID = "lagu"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Without one every notification is
// silently dropped.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // notifications are optional
	}
	return &dbusNotifier{obj: conn.Object(busName, dbus.ObjectPath(objPath))}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	var id uint32
	if err := n.obj.Call(notifyM, 0, notifyArgs(notif)...).Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(closeM, 0, id).Err
}

// notifyArgs lays out the arguments of org.freedesktop.Notifications.Notify:
// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout.
func notifyArgs(n Notification) []any {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopID),
	}
	return []any{
		appName,
		n.ReplacesID,
		n.Icon,
		n.Title,
		n.Body,
		[]string{},
		hints,
		n.Timeout,
	}
}
