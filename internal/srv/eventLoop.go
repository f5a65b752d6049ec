package srv

import (
	"github.com/jypelle/ofenpanel/internal/srv/event"
	"github.com/sirupsen/logrus"
)

// eventLoop is the only goroutine mutating the oven state.
func (s *ServerApp) eventLoop() {
	for loop := true; loop; {
		select {
		case ev := <-s.clockDevice.EventChannel():
			switch ev.Data.(type) {
			case event.TickerEventTickData:
				s.handleTick()
			}
		case ev := <-s.buttonsDevice.EventChannel():
			logrus.Debugf("Receive button event: %s, %d", ev.ButtonId, ev.ButtonEventType)
			s.handleButtonEvent(ev)
		case <-s.eventLoopAskDone:
			loop = false
		}
	}
	s.eventLoopDone <- true
}

func (s *ServerApp) handleButtonEvent(ev event.ButtonEvent) {
	if ev.ButtonEventType != event.PRESS_EVENT_TYPE {
		return
	}

	switch ev.ButtonId {
	case event.MODE_BUTTON:
		label := s.ovenState.AdvanceMode()
		logrus.Infof("Mode: %s", label)
		s.refreshModeDisplay()
	case event.LED_BUTTON:
		on := s.ovenState.ToggleLed()
		if err := s.ledDevice.Set(on); err != nil {
			logrus.Warn(err)
		}
		if on {
			s.clockDevice.Arm()
		} else {
			s.clockDevice.Disarm()
		}
		s.refreshTimerDisplay()
	case event.TIMER_BUTTON:
		seconds := s.ovenState.BumpTimer()
		logrus.Infof("Timer set to %d s", seconds)
		s.refreshTimerDisplay()
	}
}

func (s *ServerApp) handleTick() {
	if s.ovenState.Tick() {
		s.refreshTimerDisplay()
	}
	if !s.ovenState.TimerRunning() {
		s.clockDevice.Disarm()
	}
}
