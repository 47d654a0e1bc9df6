package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "Idle"},
		{Preparing, "Preparing"},
		{Prepared, "Prepared"},
		{Started, "Started"},
		{Paused, "Paused"},
		{Completed, "Completed"},
		{Errored, "Error"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsPrepared(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Idle, false},
		{Preparing, false},
		{Prepared, true},
		{Started, true},
		{Paused, true},
		{Completed, true},
		{Errored, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsPrepared(); got != tt.want {
				t.Errorf("State.IsPrepared() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanStart(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Idle, false},
		{Preparing, false},
		{Prepared, true},
		{Started, false},
		{Paused, true},
		{Completed, true},
		{Errored, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanStart(); got != tt.want {
				t.Errorf("State.CanStart() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestState_CanPause(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Idle, false},
		{Prepared, false},
		{Started, true},
		{Paused, false},
		{Completed, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.CanPause(); got != tt.want {
				t.Errorf("State.CanPause() = %v, want %v", got, tt.want)
			}
		})
	}
}
