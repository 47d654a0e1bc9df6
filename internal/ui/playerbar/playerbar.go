// Package playerbar renders the one-line transport bar under the video
// surface.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/vidpeek/internal/icons"
	"github.com/llehouerou/vidpeek/internal/playback"
	"github.com/llehouerou/vidpeek/internal/ui/render"
	"github.com/llehouerou/vidpeek/internal/ui/styles"
)

// Height is the rendered height including the border.
const Height = 3

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	stopSymbol  = "■"
	waitSymbol  = "…"
	errorSymbol = "✖"
	syncLabel   = "syncing"
	minBarWidth = 5
)

// State holds everything needed to render the bar.
type State struct {
	Name     string
	Status   playback.State
	Position time.Duration
	Duration time.Duration
	Syncing  bool
}

// NewState reads the bar state from a session.
func NewState(name string, status playback.State, s playback.Session, durationMillis int, syncing bool) State {
	return State{
		Name:     name,
		Status:   status,
		Position: time.Duration(s.PositionMillis) * time.Millisecond,
		Duration: time.Duration(durationMillis) * time.Millisecond,
		Syncing:  syncing,
	}
}

// Symbol returns the status glyph of a playback state.
func Symbol(s playback.State) string {
	switch s {
	case playback.StatePlaying:
		return playSymbol
	case playback.StateReady, playback.StatePaused, playback.StateCompleted:
		return pauseSymbol
	case playback.StatePreparing:
		return waitSymbol
	case playback.StateError:
		return errorSymbol
	default:
		return stopSymbol
	}
}

// Render returns the bar for the given terminal width.
func Render(s State, width int) string {
	inner := max(width-6, 0)
	st := styles.T().S()

	right := FormatDuration(s.Position) + " / " + FormatDuration(s.Duration)
	if s.Syncing {
		right += "   " + st.Sync.Render(icons.Sync()+" "+syncLabel)
	}
	status := Symbol(s.Status)
	if s.Status == playback.StatePlaying {
		status = st.Playing.Render(status)
	}

	nameWidth := min(lipgloss.Width(s.Name), max(inner/3, 8))
	name := st.Title.Render(render.Truncate(s.Name, nameWidth))

	fixed := lipgloss.Width(name) + 3 + lipgloss.Width(status) + 2 + 3 + lipgloss.Width(right)
	bar := progress(s.Position, s.Duration, max(inner-fixed, minBarWidth))

	line := name + "   " + status + "  " + bar + "   " + st.Muted.Render(right)
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 2).
		Width(max(width-2, 0)).
		Render(line)
}

func progress(position, duration time.Duration, width int) string {
	var ratio float64
	if duration > 0 {
		ratio = min(float64(position)/float64(duration), 1)
	}
	filled := int(float64(width) * ratio)
	st := styles.T().S()
	return st.Playing.Render(strings.Repeat("━", filled)) +
		st.Subtle.Render(strings.Repeat("─", width-filled))
}

// FormatDuration renders d as m:ss, or h:mm:ss from one hour.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
