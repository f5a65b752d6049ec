package device

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jypelle/ofenpanel/internal/srv/config"
	"github.com/jypelle/ofenpanel/internal/srv/event"
	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

const pollInterval = 5 * time.Millisecond

type Button struct {
	buttonId   event.ButtonId
	pin        gpio.PinIO
	debounce   time.Duration
	isPressed  bool
	lastChange time.Time
}

// NewButton opens the named pin as a pull-up input. Pressed reads low.
func NewButton(buttonId event.ButtonId, name string, debounce time.Duration) (*Button, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("failed to find %s button pin %s", buttonId, name)
	}
	return newButton(buttonId, pin, debounce)
}

func newButton(buttonId event.ButtonId, pin gpio.PinIO, debounce time.Duration) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("failed to setup %s button: %w", buttonId, err)
	}
	return &Button{buttonId: buttonId, pin: pin, debounce: debounce}, nil
}

// Refresh samples the pin and sends one event per debounced level change.
func (b *Button) Refresh(now time.Time, buttonEventChannel chan<- event.ButtonEvent) {
	pressed := b.pin.Read() == gpio.Low
	if pressed == b.isPressed {
		return
	}
	if !b.lastChange.IsZero() && now.Sub(b.lastChange) < b.debounce {
		return
	}

	b.isPressed = pressed
	b.lastChange = now
	if pressed {
		buttonEventChannel <- event.ButtonEvent{ButtonId: b.buttonId, ButtonEventType: event.PRESS_EVENT_TYPE}
	} else {
		buttonEventChannel <- event.ButtonEvent{ButtonId: b.buttonId, ButtonEventType: event.RELEASE_EVENT_TYPE}
	}
}

type Buttons struct {
	lock         sync.RWMutex
	eventChannel chan event.ButtonEvent
	simulation   bool
	gpioParam    config.GpioParam

	buttons  []*Button
	keyboard io.Reader

	checkTicker *time.Ticker

	askDone chan bool
	done    chan bool
}

func NewButtons(gpioParam config.GpioParam, simulation bool) *Buttons {
	device := Buttons{
		eventChannel: make(chan event.ButtonEvent),
		simulation:   simulation,
		gpioParam:    gpioParam,
		keyboard:     os.Stdin,
		askDone:      make(chan bool),
		done:         make(chan bool),
	}

	return &device
}

// UseKeyboard replaces stdin as the simulation keyboard. Call it before Start.
func (d *Buttons) UseKeyboard(keyboard io.Reader) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.keyboard = keyboard
}

func (d *Buttons) Start() {
	logrus.Infof("Start buttons device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if d.simulation {
		logrus.Infof("Simulated buttons: type m (mode), l (light), t (timer) then Enter")
		go d.readKeyboard()
		return
	}

	if _, err := host.Init(); err != nil {
		logrus.Fatalf("Unable to initialize periph host: %v", err)
	}
	for _, b := range []struct {
		id   event.ButtonId
		name string
	}{
		{event.MODE_BUTTON, d.gpioParam.ModeButton},
		{event.LED_BUTTON, d.gpioParam.LedButton},
		{event.TIMER_BUTTON, d.gpioParam.TimerButton},
	} {
		button, err := NewButton(b.id, b.name, d.gpioParam.Debounce())
		if err != nil {
			logrus.Fatalf("Unable to start buttons device: %v", err)
		}
		d.buttons = append(d.buttons, button)
	}

	d.startPolling()
}

// startPolling samples every button on a short period.
func (d *Buttons) startPolling() {
	d.checkTicker = time.NewTicker(pollInterval)
	go func() {
		for loop := true; loop; {
			select {
			case now := <-d.checkTicker.C:
				for _, button := range d.buttons {
					button.Refresh(now, d.eventChannel)
				}
			case <-d.askDone:
				loop = false
			}
		}
		d.done <- true
	}()
}

// readKeyboard turns lines of the simulation keyboard into presses.
func (d *Buttons) readKeyboard() {
	scanner := bufio.NewScanner(d.keyboard)
	for scanner.Scan() {
		for _, key := range strings.ToLower(strings.TrimSpace(scanner.Text())) {
			var buttonId event.ButtonId
			switch key {
			case 'm':
				buttonId = event.MODE_BUTTON
			case 'l':
				buttonId = event.LED_BUTTON
			case 't':
				buttonId = event.TIMER_BUTTON
			default:
				logrus.Warnf("Unknown simulated button: %q", key)
				continue
			}
			select {
			case d.eventChannel <- event.ButtonEvent{ButtonId: buttonId, ButtonEventType: event.PRESS_EVENT_TYPE}:
			case <-d.askDone:
				return
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.Warnf("Simulated keyboard closed: %v", err)
	}
}

func (d *Buttons) StopSendingEvent() {
	logrus.Infof("Stop buttons device")

	d.lock.Lock()
	defer d.lock.Unlock()

	if d.checkTicker == nil {
		// The keyboard reader may be blocked on stdin, it only learns about
		// the stop on its next key.
		close(d.askDone)
		return
	}
	d.checkTicker.Stop()
	d.askDone <- true
	<-d.done
}

func (d *Buttons) EventChannel() chan event.ButtonEvent {
	return d.eventChannel
}
