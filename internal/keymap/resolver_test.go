//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionSeekBack, []string{"left"}, "Seek -5s", "playback"},
		{ActionSeekForward, []string{"right"}, "Seek +5s", "playback"},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPlayPause},
		{"left", ActionSeekBack},
		{"right", ActionSeekForward},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result := r.Resolve(tt.key)
			if result != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, result, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionDelete, []string{"d", "delete"}, "Remove", "file"},
		{ActionDelete, []string{"d"}, "Remove", "playback"},
	})

	keys := r.KeysFor(ActionDelete)
	if len(keys) != 2 || !slices.Contains(keys, "d") || !slices.Contains(keys, "delete") {
		t.Errorf("KeysFor(ActionDelete) = %v, want deduplicated [d delete]", keys)
	}

	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_Hint(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
		{ActionShare, []string{"y"}, "Share link", "file"},
		{ActionShare, []string{"Y"}, "Share again", "file"},
	})

	tests := []struct {
		action Action
		want   string
	}{
		{ActionPlayPause, "space Play/pause"},
		{ActionShare, "y Share link"},
		{ActionSync, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			if got := r.Hint(tt.action); got != tt.want {
				t.Errorf("Hint(%q) = %q, want %q", tt.action, got, tt.want)
			}
		})
	}
}

func TestResolver_WithDefaultBindings(t *testing.T) {
	r := NewResolver(Bindings)

	if action := r.Resolve("q"); action != ActionQuit {
		t.Errorf("Resolve('q') = %q, want %q", action, ActionQuit)
	}
	if action := r.Resolve(" "); action != ActionPlayPause {
		t.Errorf("Resolve(' ') = %q, want %q", action, ActionPlayPause)
	}
	if action := r.Resolve("f"); action != ActionFullscreen {
		t.Errorf("Resolve('f') = %q, want %q", action, ActionFullscreen)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := dedupe(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.Resolve("q"); action != "" {
		t.Errorf("Resolve on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
