package device

import (
	"sync"
	"time"

	"github.com/jypelle/ofenpanel/internal/srv/event"
	"github.com/sirupsen/logrus"
)

// Clock emits one tick per interval while armed. Arming restarts the period,
// so the first tick comes a full interval after Arm.
type Clock struct {
	lock         sync.RWMutex
	eventChannel chan event.TickerEvent

	interval        time.Duration
	countdownTicker *time.Ticker
	armed           bool

	askDone chan bool
	done    chan bool
}

func NewClock(interval time.Duration) *Clock {
	return &Clock{
		eventChannel: make(chan event.TickerEvent),
		interval:     interval,
		askDone:      make(chan bool),
		done:         make(chan bool),
	}
}

func (d *Clock) Start() {
	logrus.Infof("Start clock device")
	d.lock.Lock()
	defer d.lock.Unlock()

	d.countdownTicker = time.NewTicker(d.interval)
	d.countdownTicker.Stop()

	go func() {
		for loop := true; loop; {
			select {
			case <-d.countdownTicker.C:
				if !d.IsArmed() {
					continue
				}
				select {
				case d.eventChannel <- event.TickerEvent{Data: event.TickerEventTickData{}}:
				case <-d.askDone:
					loop = false
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.done <- true
	}()
}

func (d *Clock) Arm() {
	d.lock.Lock()
	defer d.lock.Unlock()

	logrus.Debugf("Arm countdown clock")
	d.armed = true
	d.countdownTicker.Reset(d.interval)
}

func (d *Clock) Disarm() {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.armed {
		logrus.Debugf("Disarm countdown clock")
	}
	d.armed = false
	d.countdownTicker.Stop()
}

func (d *Clock) IsArmed() bool {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.armed
}

func (d *Clock) StopSendingEvent() {
	logrus.Infof("Stop clock device")

	d.Disarm()
	d.askDone <- true
	<-d.done
}

func (d *Clock) EventChannel() chan event.TickerEvent {
	return d.eventChannel
}
