// Package notify delivers desktop notifications.
package notify

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/paradajz/internal/util"
	"github.com/godbus/dbus/v5"
)

const (
	busName    = "org.freedesktop.Notifications"
	objectPath = dbus.ObjectPath("/org/freedesktop/Notifications")
	method     = busName + ".Notify"
)

// Notifier shows a message to the user. A zero timeout keeps it on screen
// until dismissed.
type Notifier interface {
	Notify(message string, timeout time.Duration) error
}

// DBusNotifier talks to the freedesktop notification daemon on the
// session bus.
type DBusNotifier struct {
	AppName string
	connect func() (*dbus.Conn, error)
}

func NewDBusNotifier(appName string) *DBusNotifier {
	return &DBusNotifier{
		AppName: appName,
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
	}
}

func (n *DBusNotifier) Notify(message string, timeout time.Duration) error {
	conn, err := n.connect()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	call := conn.Object(busName, objectPath).Call(method, 0, notifyArgs(n.AppName, message, timeout)...)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}

// notifyArgs follows the Notify signature (susssasa{sv}i).
func notifyArgs(appName, summary string, timeout time.Duration) []interface{} {
	return []interface{}{
		appName,
		uint32(0),
		"",
		summary,
		"",
		[]string{},
		map[string]dbus.Variant{},
		int32(timeout / time.Millisecond),
	}
}

// ExpiryNotice shows a fixed message when a timer expires. Delivery
// failures are logged; the countdown itself already completed.
type ExpiryNotice struct {
	notifier Notifier
	message  string
	timeout  time.Duration
}

func NewExpiryNotice(n Notifier, message string, timeout time.Duration) *ExpiryNotice {
	return &ExpiryNotice{notifier: n, message: message, timeout: timeout}
}

func (e *ExpiryNotice) OnExpiry() {
	util.LogError("show notification", e.notifier.Notify(e.message, e.timeout))
}
