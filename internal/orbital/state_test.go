package orbital

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		wantErr bool
	}{
		{"ground state", State{1, 0, 0}, false},
		{"2p ml=-1", State{2, 1, -1}, false},
		{"3d ml=2", State{3, 2, 2}, false},
		{"n=0", State{0, 0, 0}, true},
		{"l exceeds n-1", State{2, 2, 0}, true},
		{"negative l", State{1, -1, 0}, true},
		{"ml exceeds l", State{2, 1, 2}, true},
		{"ml exceeds l negative", State{2, 1, -2}, true},
		{"valid but unsupported n", State{4, 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidState) {
				t.Errorf("Validate(%v) = %v, want ErrInvalidState", tt.state, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%v) = %v, want nil", tt.state, err)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	got := State{3, 2, -1}.String()
	want := "(n=3, l=2, ml=-1)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
