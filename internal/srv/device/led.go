package device

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Led is the oven light indicator on a digital output pin.
type Led struct {
	lock       sync.RWMutex
	pinName    string
	pin        gpio.PinOut
	simulation bool
	on         bool
}

func NewLed(pinName string, simulation bool) *Led {
	return &Led{pinName: pinName, simulation: simulation}
}

func (d *Led) Start() {
	logrus.Infof("Start led device")

	if d.simulation {
		return
	}

	if _, err := host.Init(); err != nil {
		logrus.Fatalf("Unable to initialize periph host: %v", err)
	}
	pin := gpioreg.ByName(d.pinName)
	if pin == nil {
		logrus.Fatalf("Failed to find led pin %s", d.pinName)
	}
	if err := d.attach(pin); err != nil {
		logrus.Fatalf("Unable to start led device: %v", err)
	}
}

// attach drives pin low and uses it from now on.
func (d *Led) attach(pin gpio.PinOut) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if err := pin.Out(gpio.Low); err != nil {
		return fmt.Errorf("failed to setup led pin %s: %w", pin, err)
	}
	d.pin = pin
	d.on = false
	return nil
}

// Set mirrors on to the output pin.
func (d *Led) Set(on bool) error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.pin != nil {
		if err := d.pin.Out(gpio.Level(on)); err != nil {
			return fmt.Errorf("failed to drive led pin %s: %w", d.pin, err)
		}
	} else {
		logrus.Debugf("Simulated led on: %v", on)
	}
	d.on = on
	return nil
}

func (d *Led) IsOn() bool {
	d.lock.RLock()
	defer d.lock.RUnlock()
	return d.on
}

// Stop leaves the light off.
func (d *Led) Stop() {
	logrus.Infof("Stop led device")
	if err := d.Set(false); err != nil {
		logrus.Errorf("Unable to switch led off: %v", err)
	}
}
