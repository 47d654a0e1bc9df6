// Package notify provides desktop notifications via D-Bus.
package notify

import "path/filepath"

const (
	appName      = "vidpeek"
	appTitle     = "Vidpeek"
	errorIcon    = "dialog-error"
	errorTimeout = 8000

	// CategoryPlayback marks playback failures for notification daemons
	// that group by category.
	CategoryPlayback = "x-vidpeek.playback"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical

	// Tag groups notifications about the same subject: a new one replaces
	// the bubble still shown for its tag.
	Tag       string
	Category  string
	Transient bool // skip the notification history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// PlaybackError builds the notification sent when a preview fails while
// nobody is looking at it.
func PlaybackError(path, message string) Notification {
	return Notification{
		Title:    "Cannot play " + filepath.Base(path),
		Body:     message,
		Icon:     errorIcon,
		Timeout:  errorTimeout,
		Urgency:  UrgencyCritical,
		Tag:      path,
		Category: CategoryPlayback,
	}
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier {
	return &stubNotifier{}
}
