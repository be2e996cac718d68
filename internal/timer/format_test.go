package timer

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{6 * time.Second, "0:06"},
		{5*time.Second + 200*time.Millisecond, "0:06"},
		{4*time.Minute + 59*time.Second, "4:59"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
		{-2 * time.Second, "+0:02"},
		{-(61 * time.Second), "+1:01"},
		{-(time.Hour + time.Second), "+1:00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatRemaining(tt.in); got != tt.want {
				t.Errorf("FormatRemaining(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestState_String(t *testing.T) {
	if StateOvertime.String() != "Overtime" {
		t.Errorf("StateOvertime.String() = %q", StateOvertime.String())
	}
	if State(42).String() != "Unknown" {
		t.Errorf("State(42).String() = %q", State(42).String())
	}
	if OwnerExternal.String() != "external" {
		t.Errorf("OwnerExternal.String() = %q", OwnerExternal.String())
	}
}

func TestState_Predicates(t *testing.T) {
	if StateInactive.IsActive() {
		t.Error("Inactive should not be active")
	}
	if !StateOvertime.Ticking() || StatePaused.Ticking() || StateFinished.Ticking() {
		t.Error("only Running and Overtime tick")
	}
}
