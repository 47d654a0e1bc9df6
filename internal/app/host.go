// internal/app/host.go
package app

import (
	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/preview"
	"github.com/llehouerou/vidpeek/internal/ui/confirm"
)

// dialogRequest is a dialog asked for by the preview, shown once no other
// dialog is open.
type dialogRequest struct {
	kind    confirm.Kind
	title   string
	message string
	onYes   func()
}

// Host is the terminal side of a preview: it queues the dialogs the
// preview asks for and records the host requests. The Model applies them
// after every preview call. All methods run on the bubbletea loop.
type Host struct {
	pending     []dialogRequest
	attached    bool
	finished    bool
	menuDirty   bool
	enabled     bool
	playing     bool
	lastError   string
	errorSerial int
}

// NewHost creates an attached host.
func NewHost() *Host {
	return &Host{attached: true, menuDirty: true}
}

// Alert implements preview.Dialogs.
func (h *Host) Alert(message string, onAck func()) {
	h.pending = append(h.pending, dialogRequest{
		kind:    confirm.KindAlert,
		title:   "Playback error",
		message: message,
		onYes:   onAck,
	})
}

// Confirm implements preview.Dialogs.
func (h *Host) Confirm(message string, onConfirm func()) {
	h.pending = append(h.pending, dialogRequest{
		kind:    confirm.KindConfirm,
		title:   "Remove file",
		message: message,
		onYes:   onConfirm,
	})
}

// ShowText opens a dismissible text panel.
func (h *Host) ShowText(title, body string) {
	h.pending = append(h.pending, dialogRequest{kind: confirm.KindInfo, title: title, message: body})
}

// Finish implements preview.Host.
func (h *Host) Finish() { h.finished = true }

// InvalidateMenu implements preview.Host.
func (h *Host) InvalidateMenu() { h.menuDirty = true }

// Attached implements preview.Host.
func (h *Host) Attached() bool { return h.attached }

// Report implements preview.Host.
func (h *Host) Report(op errmsg.Op, err error) {
	h.lastError = errmsg.Format(op, err)
	h.errorSerial++
}

// SetEnabled implements playback.Controls.
func (h *Host) SetEnabled(enabled bool) {
	h.enabled = enabled
	if !enabled {
		h.playing = false
	}
}

// Refresh implements playback.Controls.
func (h *Host) Refresh(playing bool) { h.playing = playing }

func (h *Host) next() (dialogRequest, bool) {
	if len(h.pending) == 0 {
		return dialogRequest{}, false
	}
	req := h.pending[0]
	h.pending = h.pending[1:]
	return req, true
}

var (
	_ preview.Dialogs   = (*Host)(nil)
	_ preview.Host      = (*Host)(nil)
	_ playback.Controls = (*Host)(nil)
)
