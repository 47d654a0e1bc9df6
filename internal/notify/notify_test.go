package notify

import "testing"

func TestUrgencyValues(t *testing.T) {
	// Verify urgency constants match D-Bus spec
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

func TestPlaybackError(t *testing.T) {
	n := PlaybackError("/videos/holiday/clip.mp4", "The video file could not be read.")

	if n.Title != "Cannot play clip.mp4" {
		t.Errorf("Title = %q", n.Title)
	}
	if n.Body != "The video file could not be read." {
		t.Errorf("Body = %q", n.Body)
	}
	if n.Urgency != UrgencyCritical {
		t.Errorf("Urgency = %d, want UrgencyCritical", n.Urgency)
	}
	if n.Timeout <= 0 {
		t.Errorf("Timeout = %d, want positive", n.Timeout)
	}
	if n.Tag != "/videos/holiday/clip.mp4" {
		t.Errorf("Tag = %q, want the full path", n.Tag)
	}
	if n.Category != CategoryPlayback {
		t.Errorf("Category = %q", n.Category)
	}
}

func TestDisabledNotifier(t *testing.T) {
	n := Disabled()
	id, err := n.Notify(Notification{Title: "ignored"})
	if err != nil || id != 0 {
		t.Errorf("Notify() = %d, %v; want 0, nil", id, err)
	}
	if err := n.Close(42); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
