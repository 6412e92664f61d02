package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionPause)
	f.Set(ActionUp)
	f.Set(ActionRight)
	f.Set(ActionNone)

	got := f.Directions()
	want := []Action{ActionRight, ActionUp, ActionRight}
	if len(got) != len(want) {
		t.Fatalf("Directions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Directions() = %v, want %v", got, want)
		}
	}

	for _, a := range []Action{ActionRight, ActionUp, ActionPause} {
		if !f.Has(a) {
			t.Errorf("Has(%s) = false after Set", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionDown, ActionQuit, Action(99)} {
		if f.Has(a) {
			t.Errorf("Has(%s) = true, never set", a)
		}
	}

	f.Clear()
	if f.Has(ActionPause) || len(f.Directions()) != 0 {
		t.Error("Clear should drop every action")
	}
}

func TestAction(t *testing.T) {
	tests := []struct {
		action    Action
		name      string
		direction bool
	}{
		{ActionNone, "None", false},
		{ActionUp, "Up", true},
		{ActionDown, "Down", true},
		{ActionLeft, "Left", true},
		{ActionRight, "Right", true},
		{ActionRestart, "Restart", false},
		{ActionPause, "Pause", false},
		{Action(-1), "Unknown", false},
		{Action(42), "Unknown", false},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.name {
			t.Errorf("Action(%d).String() = %q, want %q", int(tc.action), got, tc.name)
		}
		if got := tc.action.IsDirection(); got != tc.direction {
			t.Errorf("%s.IsDirection() = %v, want %v", tc.name, got, tc.direction)
		}
	}
}
