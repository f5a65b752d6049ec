// Package oven holds the mode and countdown state of the panel.
package oven

import (
	"sync"

	"github.com/sirupsen/logrus"
)

type State struct {
	lock sync.RWMutex

	modes     []string
	modeIndex int

	ledOn        bool
	timerRunning bool
	timerSeconds int

	timerMax  int
	timerStep int
}

// Snapshot is a copy of State taken under its lock.
type Snapshot struct {
	ModeIndex    int
	ModeLabel    string
	LedOn        bool
	TimerRunning bool
	TimerSeconds int
}

// NewState starts on the first mode with the LED off and the countdown
// stopped at initialSeconds.
func NewState(modes []string, initialSeconds, timerMax, timerStep int) *State {
	return &State{
		modes:        append([]string(nil), modes...),
		timerSeconds: initialSeconds,
		timerMax:     timerMax,
		timerStep:    timerStep,
	}
}

func (s *State) Snapshot() Snapshot {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return Snapshot{
		ModeIndex:    s.modeIndex,
		ModeLabel:    s.modes[s.modeIndex],
		LedOn:        s.ledOn,
		TimerRunning: s.timerRunning,
		TimerSeconds: s.timerSeconds,
	}
}

func (s *State) ModeLabel() string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.modes[s.modeIndex]
}

func (s *State) TimerSeconds() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.timerSeconds
}

func (s *State) TimerRunning() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.timerRunning
}

// AdvanceMode selects the next mode, wrapping to the first one, and returns
// its label.
func (s *State) AdvanceMode() string {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.modeIndex = (s.modeIndex + 1) % len(s.modes)
	logrus.Debugf("New mode: %s", s.modes[s.modeIndex])
	return s.modes[s.modeIndex]
}

// ToggleLed flips the LED. Switching it on starts the countdown from the
// current value, switching it off stops it where it is.
func (s *State) ToggleLed() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.ledOn = !s.ledOn
	s.timerRunning = s.ledOn
	if s.ledOn {
		logrus.Infof("LED turned ON and Timer started.")
	} else {
		logrus.Infof("LED turned OFF and Timer stopped.")
	}
	return s.ledOn
}

// BumpTimer adds one step to the countdown. Going past the maximum wraps to 0.
func (s *State) BumpTimer() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.timerSeconds += s.timerStep
	if s.timerSeconds > s.timerMax {
		s.timerSeconds = 0
	}
	logrus.Debugf("New timer value: %d s", s.timerSeconds)
	return s.timerSeconds
}

// Tick advances a running countdown by one second and reports whether the
// displayed value changed. A tick at zero stops the countdown but leaves the
// LED as it is.
func (s *State) Tick() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if !s.timerRunning {
		return false
	}
	if s.timerSeconds > 0 {
		s.timerSeconds--
		return true
	}

	logrus.Infof("Timer reached zero")
	s.timerRunning = false
	return false
}
