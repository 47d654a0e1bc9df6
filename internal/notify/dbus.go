//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	busName   = "org.freedesktop.Notifications"
	busPath   = "/org/freedesktop/Notifications"
	busMethod = busName + ".Notify"
	busClose  = busName + ".CloseNotification"
)

type dbusNotifier struct {
	obj dbus.BusObject

	mu   sync.Mutex
	sent map[string]uint32 // tag -> id of the bubble currently on screen
}

// New connects to the session bus. Without a session bus the returned
// notifier silently drops everything.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // no session bus is not fatal
	}
	return &dbusNotifier{
		obj:  conn.Object(busName, busPath),
		sent: make(map[string]uint32),
	}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	replaces := notif.ReplacesID
	if replaces == 0 && notif.Tag != "" {
		n.mu.Lock()
		replaces = n.sent[notif.Tag]
		n.mu.Unlock()
	}

	// app_name, replaces_id, app_icon, summary, body, actions, hints, expire_timeout
	call := n.obj.Call(busMethod, 0,
		appTitle, replaces, notif.Icon, notif.Title, notif.Body,
		[]string{}, hints(notif), notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}

	if notif.Tag != "" {
		n.mu.Lock()
		n.sent[notif.Tag] = id
		n.mu.Unlock()
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	n.mu.Lock()
	for tag, sent := range n.sent {
		if sent == id {
			delete(n.sent, tag)
		}
	}
	n.mu.Unlock()
	return n.obj.Call(busClose, 0, id).Err
}

func hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
	}
	if notif.Category != "" {
		h["category"] = dbus.MakeVariant(notif.Category)
	}
	if notif.Transient {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}
