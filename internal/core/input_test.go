package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if !f.Empty() || f.Has(ActionSelect) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionSelect)
	f.Set(ActionLeft)
	if !f.Has(ActionSelect) || !f.Has(ActionLeft) || f.Has(ActionHint) {
		t.Errorf("unexpected actions %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionSelect) || !clone.Has(ActionLeft) {
		t.Error("Clear should not affect the clone")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionShuffle, "Shuffle"},
		{ActionHint, "Hint"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
