package handoff

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runCall struct {
	name string
	args []string
}

func newTestLauncher(command string, onRun func(args []string) error) (*Launcher, *[]runCall) {
	calls := &[]runCall{}
	l := NewLauncher(command, nil, "", zerolog.Nop())
	l.lookPath = func(name string) (string, error) {
		if name == "mpv" || name == "vlc" || name == "myplayer" {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	l.run = func(_ context.Context, name string, args ...string) error {
		*calls = append(*calls, runCall{name: name, args: args})
		if onRun != nil {
			return onRun(args)
		}
		return nil
	}
	return l, calls
}

func watchDirArg(args []string) string {
	for _, a := range args {
		if v, ok := strings.CutPrefix(a, "--watch-later-directory="); ok {
			return v
		}
	}
	return ""
}

func TestLauncher_MpvReadsWatchLater(t *testing.T) {
	l, calls := newTestLauncher("", func(args []string) error {
		dir := watchDirArg(args)
		return os.WriteFile(filepath.Join(dir, "HASH"), []byte("start=42.500000\npause=yes\n"), 0o600)
	})
	l.SetTempDir(t.TempDir())

	res, err := l.Open(context.Background(), Launch{
		Path:    "/data/clip.mp4",
		Request: Request{PositionMillis: 12_000, Autoplay: true},
	})

	require.NoError(t, err)
	assert.Equal(t, Result{PositionMillis: 42_500, IsPlaying: false}, res)
	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/usr/bin/mpv", call.name)
	assert.Contains(t, call.args, "--fs")
	assert.Contains(t, call.args, "--start=12.000")
	assert.Contains(t, call.args, "--save-position-on-quit")
	assert.NotContains(t, call.args, "--pause")
	assert.Equal(t, "/data/clip.mp4", call.args[len(call.args)-1])
}

func TestLauncher_MpvFinishedFile(t *testing.T) {
	l, _ := newTestLauncher("mpv", nil)
	l.SetTempDir(t.TempDir())

	res, err := l.Open(context.Background(), Launch{
		Path:    "/data/clip.mp4",
		Request: Request{PositionMillis: 0, Autoplay: false},
	})

	require.NoError(t, err)
	assert.Equal(t, Result{}, res)
}

func TestLauncher_PausedRequestAddsPauseFlag(t *testing.T) {
	l, calls := newTestLauncher("vlc", nil)

	_, err := l.Open(context.Background(), Launch{Path: "/v.mp4", Request: Request{PositionMillis: 1500}})

	require.NoError(t, err)
	args := (*calls)[0].args
	assert.Contains(t, args, "--start-paused")
	assert.Contains(t, args, "--start-time=1.500")
	assert.Contains(t, args, "--fullscreen")
}

func TestLauncher_ElapsedTimeForPlayersWithoutWatchLater(t *testing.T) {
	l, _ := newTestLauncher("vlc", nil)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := []time.Time{start, start.Add(7 * time.Second)}
	l.now = func() time.Time {
		t := ticks[0]
		ticks = ticks[1:]
		return t
	}

	res, err := l.Open(context.Background(), Launch{Path: "/v.mp4", Request: Request{PositionMillis: 1000, Autoplay: true}})

	require.NoError(t, err)
	assert.Equal(t, Result{PositionMillis: 8000, IsPlaying: true}, res)
}

func TestLauncher_ConfiguredStartFlagWithSpace(t *testing.T) {
	l, calls := newTestLauncher("myplayer", nil)
	l.startFlag = "-ss "

	_, err := l.Open(context.Background(), Launch{Path: "/v.mp4", Request: Request{PositionMillis: 2000, Autoplay: true}})

	require.NoError(t, err)
	assert.Equal(t, []string{"-ss", "2.000", "/v.mp4"}, (*calls)[0].args)
}

func TestLauncher_NoPlayer(t *testing.T) {
	l, _ := newTestLauncher("", nil)
	l.lookPath = func(string) (string, error) { return "", errors.New("not found") }

	_, err := l.Open(context.Background(), Launch{Path: "/v.mp4"})

	require.Error(t, err)
}

func TestLauncher_PlayerFailure(t *testing.T) {
	l, _ := newTestLauncher("vlc", func([]string) error { return errors.New("exit status 1") })

	_, err := l.Open(context.Background(), Launch{Path: "/v.mp4"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "vlc")
}

func TestLauncher_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	l, _ := newTestLauncher("vlc", func([]string) error {
		cancel()
		return errors.New("signal: killed")
	})

	_, err := l.Open(ctx, Launch{Path: "/v.mp4"})

	assert.ErrorIs(t, err, context.Canceled)
}
