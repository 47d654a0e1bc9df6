package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/ui/testutil"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{5 * time.Second, "0:05"},
		{83 * time.Second, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, playSymbol, Symbol(playback.StatePlaying))
	assert.Equal(t, pauseSymbol, Symbol(playback.StatePaused))
	assert.Equal(t, pauseSymbol, Symbol(playback.StateCompleted))
	assert.Equal(t, waitSymbol, Symbol(playback.StatePreparing))
	assert.Equal(t, errorSymbol, Symbol(playback.StateError))
	assert.Equal(t, stopSymbol, Symbol(playback.StateUninitialized))
}

func TestNewState(t *testing.T) {
	s := NewState("clip.mp4", playback.StatePaused, playback.Session{PositionMillis: 1500}, 60_000, true)

	assert.Equal(t, 1500*time.Millisecond, s.Position)
	assert.Equal(t, time.Minute, s.Duration)
	assert.True(t, s.Syncing)
}

func TestRender(t *testing.T) {
	s := State{
		Name:     "clip.mp4",
		Status:   playback.StatePlaying,
		Position: 83 * time.Second,
		Duration: 4 * time.Minute,
	}

	out := Render(s, 80)
	plain := testutil.StripANSI(out)

	assert.Len(t, testutil.SplitLines(out), Height)
	assert.Contains(t, plain, "clip.mp4")
	assert.Contains(t, plain, "1:23 / 4:00")
	assert.Contains(t, plain, playSymbol)
	assert.NotContains(t, plain, "syncing")
	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestRender_SyncIndicator(t *testing.T) {
	out := Render(State{Name: "clip.mp4", Syncing: true}, 80)
	assert.Contains(t, testutil.StripANSI(out), "syncing")
}

func TestRender_LongNameIsTruncated(t *testing.T) {
	out := Render(State{Name: strings.Repeat("very-long-name-", 10) + ".mp4"}, 60)
	assert.Contains(t, testutil.StripANSI(out), "…")
}

func TestProgress(t *testing.T) {
	bar := testutil.StripANSI(progress(30*time.Second, time.Minute, 10))
	assert.Equal(t, "━━━━━─────", bar)

	bar = testutil.StripANSI(progress(0, 0, 4))
	assert.Equal(t, "────", bar)
}
