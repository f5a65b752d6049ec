package oven

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testModes = []string{"Umluft", "Oberhitze", "Heisluft", "Unterhitze"}

func newTestState(seconds int) *State {
	return NewState(testModes, seconds, 1200, 60)
}

func TestNewState(t *testing.T) {
	got := newTestState(1200).Snapshot()
	want := Snapshot{ModeIndex: 0, ModeLabel: "Umluft", TimerSeconds: 1200}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Snapshot() difference (-got +want):\n%s", diff)
	}
}

func TestNewStateCopiesModes(t *testing.T) {
	modes := []string{"A", "B"}
	s := NewState(modes, 0, 1200, 60)
	modes[0] = "changed"
	if got := s.ModeLabel(); got != "A" {
		t.Errorf("ModeLabel() = %q, want %q", got, "A")
	}
}

func TestAdvanceMode(t *testing.T) {
	s := newTestState(1200)

	var got []string
	for range testModes {
		got = append(got, s.AdvanceMode())
	}

	want := []string{"Oberhitze", "Heisluft", "Unterhitze", "Umluft"}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("AdvanceMode() labels difference (-got +want):\n%s", diff)
	}
	if idx := s.Snapshot().ModeIndex; idx != 0 {
		t.Errorf("mode index after a full cycle = %d, want 0", idx)
	}
}

func TestBumpTimer(t *testing.T) {
	for _, tc := range []struct {
		name    string
		start   int
		running bool
		want    int
	}{
		{name: "from zero", start: 0, want: 60},
		{name: "partial minute", start: 65, want: 125},
		{name: "reaches max", start: 1140, want: 1200},
		{name: "wraps at max", start: 1200, want: 0},
		{name: "wraps above max", start: 1190, want: 0},
		{name: "while running", start: 300, running: true, want: 360},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(tc.start)
			if tc.running {
				s.ToggleLed()
			}
			if got := s.BumpTimer(); got != tc.want {
				t.Errorf("BumpTimer() = %d, want %d", got, tc.want)
			}
			if got := s.TimerSeconds(); got != tc.want {
				t.Errorf("TimerSeconds() = %d, want %d", got, tc.want)
			}
			if got := s.TimerRunning(); got != tc.running {
				t.Errorf("TimerRunning() = %v, want %v", got, tc.running)
			}
		})
	}
}

func TestToggleLed(t *testing.T) {
	s := newTestState(500)

	if on := s.ToggleLed(); !on {
		t.Fatal("ToggleLed() = false, want true")
	}
	want := Snapshot{ModeLabel: "Umluft", LedOn: true, TimerRunning: true, TimerSeconds: 500}
	if diff := cmp.Diff(s.Snapshot(), want); diff != "" {
		t.Errorf("after switching on (-got +want):\n%s", diff)
	}

	s.Tick()
	if on := s.ToggleLed(); on {
		t.Fatal("ToggleLed() = true, want false")
	}
	want = Snapshot{ModeLabel: "Umluft", TimerSeconds: 499}
	if diff := cmp.Diff(s.Snapshot(), want); diff != "" {
		t.Errorf("after switching off (-got +want):\n%s", diff)
	}
}

func TestTick(t *testing.T) {
	s := newTestState(1)
	s.ToggleLed()

	if changed := s.Tick(); !changed {
		t.Error("first Tick() reported no change")
	}
	want := Snapshot{ModeLabel: "Umluft", LedOn: true, TimerRunning: true, TimerSeconds: 0}
	if diff := cmp.Diff(s.Snapshot(), want); diff != "" {
		t.Errorf("after first tick (-got +want):\n%s", diff)
	}

	if changed := s.Tick(); changed {
		t.Error("Tick() at zero reported a change")
	}
	want.TimerRunning = false
	if diff := cmp.Diff(s.Snapshot(), want); diff != "" {
		t.Errorf("after expiry tick (-got +want):\n%s", diff)
	}
}

func TestTickStopped(t *testing.T) {
	s := newTestState(30)
	if changed := s.Tick(); changed {
		t.Error("Tick() on a stopped countdown reported a change")
	}
	if got := s.TimerSeconds(); got != 30 {
		t.Errorf("TimerSeconds() = %d, want 30", got)
	}
}

func TestCountdown(t *testing.T) {
	s := newTestState(1200)
	s.ToggleLed()
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if got := s.TimerSeconds(); got != 1197 {
		t.Errorf("TimerSeconds() = %d, want 1197", got)
	}
}
