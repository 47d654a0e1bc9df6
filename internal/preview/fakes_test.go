package preview

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/llehouerou/vidpeek/internal/errmsg"
	"github.com/llehouerou/vidpeek/internal/handoff"
	"github.com/llehouerou/vidpeek/internal/media"
	"github.com/llehouerou/vidpeek/internal/notify"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/player"
	"github.com/llehouerou/vidpeek/internal/progress"
	"github.com/llehouerou/vidpeek/internal/snapshot"
)

var (
	clip  = media.Item{Path: "/videos/clip.mp4", MimeType: "video/mp4", Downloaded: true, Kind: media.KindVideo}
	alice = media.Account{Name: "alice@cloud.example.com"}
)

// recordingEngine logs releases into a shared journal.
type recordingEngine struct {
	*player.Mock
	journal *[]string
}

func (r recordingEngine) Release() {
	*r.journal = append(*r.journal, "release")
	r.Mock.Release()
}

type fakeSource struct {
	sinks   []func(progress.Status)
	keys    []progress.Key
	stopped int
	journal *[]string
	err     error
}

func (f *fakeSource) Listen(key progress.Key, sink func(progress.Status)) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sinks = append(f.sinks, sink)
	f.keys = append(f.keys, key)
	return func() {
		f.stopped++
		if f.journal != nil {
			*f.journal = append(*f.journal, "unbind")
		}
	}, nil
}

func (f *fakeSource) listening() int { return len(f.sinks) - f.stopped }

type fakeViewer struct {
	launches chan handoff.Launch
	result   *handoff.Result
	err      error
}

func newFakeViewer() *fakeViewer {
	return &fakeViewer{launches: make(chan handoff.Launch, 4)}
}

func (v *fakeViewer) Open(_ context.Context, l handoff.Launch) (handoff.Result, error) {
	v.launches <- l
	if v.err != nil {
		return handoff.Result{}, v.err
	}
	if v.result != nil {
		return *v.result, nil
	}
	return handoff.Result{PositionMillis: l.Request.PositionMillis, IsPlaying: l.Request.Autoplay}, nil
}

type fileCall struct {
	op       string
	item     media.Item
	account  media.Account
	favorite bool
	state    playback.State
}

type fakeFiles struct {
	calls []fileCall
	err   error
	state func() playback.State
}

func (f *fakeFiles) record(op string, item media.Item, account media.Account, favorite bool) error {
	c := fileCall{op: op, item: item, account: account, favorite: favorite}
	if f.state != nil {
		c.state = f.state()
	}
	f.calls = append(f.calls, c)
	return f.err
}

func (f *fakeFiles) Share(i media.Item, a media.Account) error    { return f.record("share", i, a, false) }
func (f *fakeFiles) Send(i media.Item, a media.Account) error     { return f.record("send", i, a, false) }
func (f *fakeFiles) OpenWith(i media.Item, a media.Account) error { return f.record("open-with", i, a, false) }
func (f *fakeFiles) Sync(i media.Item, a media.Account) error     { return f.record("sync", i, a, false) }
func (f *fakeFiles) ShowDetails(i media.Item, a media.Account) error {
	return f.record("details", i, a, false)
}
func (f *fakeFiles) Remove(i media.Item, a media.Account) error { return f.record("remove", i, a, false) }
func (f *fakeFiles) SetFavorite(i media.Item, a media.Account, fav bool) error {
	return f.record("favorite", i, a, fav)
}

type fakeDialogs struct {
	alerts   []string
	ack      func()
	confirms []string
	confirm  func()
}

func (d *fakeDialogs) Alert(message string, onAck func()) {
	d.alerts = append(d.alerts, message)
	d.ack = onAck
}

func (d *fakeDialogs) Confirm(message string, onConfirm func()) {
	d.confirms = append(d.confirms, message)
	d.confirm = onConfirm
}

type report struct {
	op  errmsg.Op
	err error
}

type fakeHost struct {
	attached    bool
	finished    int
	invalidated int
	reports     []report
}

func (h *fakeHost) Finish()         { h.finished++ }
func (h *fakeHost) InvalidateMenu() { h.invalidated++ }
func (h *fakeHost) Attached() bool  { return h.attached }
func (h *fakeHost) Report(op errmsg.Op, err error) {
	h.reports = append(h.reports, report{op: op, err: err})
}

type fakeNotifier struct {
	sent []notify.Notification
}

func (n *fakeNotifier) Notify(x notify.Notification) (uint32, error) {
	n.sent = append(n.sent, x)
	return uint32(len(n.sent)), nil
}

func (n *fakeNotifier) Close(uint32) error { return nil }

type fakeAudio struct{ stops int }

func (a *fakeAudio) StopAudio() { a.stops++ }

type fakeControls struct {
	enabled  bool
	refreshs []bool
}

func (c *fakeControls) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *fakeControls) Refresh(playing bool)    { c.refreshs = append(c.refreshs, playing) }

// fixture bundles a preview with its fakes.
type fixture struct {
	preview  *Preview
	engine   *player.Mock
	source   *fakeSource
	viewer   *fakeViewer
	files    *fakeFiles
	dialogs  *fakeDialogs
	host     *fakeHost
	notifier *fakeNotifier
	audio    *fakeAudio
	controls *fakeControls
	journal  *[]string
}

func newFixture(t *testing.T, args Args, snapshots *snapshot.Manager) *fixture {
	t.Helper()
	journal := &[]string{}
	f := &fixture{
		engine:   player.NewMock(),
		source:   &fakeSource{journal: journal},
		viewer:   newFakeViewer(),
		files:    &fakeFiles{},
		dialogs:  &fakeDialogs{},
		host:     &fakeHost{attached: true},
		notifier: &fakeNotifier{},
		audio:    &fakeAudio{},
		controls: &fakeControls{},
		journal:  journal,
	}
	p, err := New(args, Deps{
		Engine:    recordingEngine{Mock: f.engine, journal: journal},
		Controls:  f.controls,
		Source:    f.source,
		Viewer:    f.viewer,
		Files:     f.files,
		Dialogs:   f.dialogs,
		Host:      f.host,
		Snapshots: snapshots,
		Audio:     f.audio,
		Notifier:  f.notifier,
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	f.preview = p
	f.files.state = p.Controller().State
	t.Cleanup(func() { _ = p.Destroy() })
	return f
}

func validArgs(position int, autoplay bool) Args {
	item, account := clip, alice
	return Args{Item: &item, Account: &account, PositionMillis: position, Autoplay: autoplay}
}

// activateAndPrepare activates the preview and delivers the prepared event.
func (f *fixture) activateAndPrepare(t *testing.T) {
	t.Helper()
	if err := f.preview.Activate(); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !f.preview.HandleEvent(f.engine.SimulatePrepared()) {
		t.Fatal("prepared event was not applied")
	}
}
