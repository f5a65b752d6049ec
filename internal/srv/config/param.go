package config

import (
	_ "embed"
	"errors"
	"fmt"
	"time"
)

//go:embed param_default.yaml
var ParamDefaultFile []byte

var ErrInvalidParam = errors.New("invalid param")

type ServerParam struct {
	Modes  []string   `yaml:"modes"`
	Timer  TimerParam `yaml:"timer"`
	Font   FontParam  `yaml:"font"`
	Labels LabelParam `yaml:"labels"`
	Gpio   GpioParam  `yaml:"gpio"`
}

type TimerParam struct {
	Initial int   `yaml:"initial"`
	Max     int   `yaml:"max"`
	Step    int   `yaml:"step"`
	TickMs  int64 `yaml:"tick_ms"`
}

func (p TimerParam) TickInterval() time.Duration {
	return time.Duration(p.TickMs) * time.Millisecond
}

type FontParam struct {
	File      string  `yaml:"file"`
	LabelSize float64 `yaml:"label_size"`
	ModeSize  float64 `yaml:"mode_size"`
}

type LabelParam struct {
	Temperature string `yaml:"temperature"`
}

type GpioParam struct {
	ModeButton  string `yaml:"mode_button"`
	LedButton   string `yaml:"led_button"`
	TimerButton string `yaml:"timer_button"`
	Led         string `yaml:"led"`
	DebounceMs  int64  `yaml:"debounce_ms"`
}

func (p GpioParam) Debounce() time.Duration {
	return time.Duration(p.DebounceMs) * time.Millisecond
}

// Validate checks the parameters the state machine and devices rely on.
func (p *ServerParam) Validate() error {
	if len(p.Modes) == 0 {
		return fmt.Errorf("%w: at least one mode is required", ErrInvalidParam)
	}
	for i, mode := range p.Modes {
		if mode == "" {
			return fmt.Errorf("%w: mode %d has an empty label", ErrInvalidParam, i)
		}
	}

	if p.Timer.Max <= 0 || p.Timer.Step <= 0 {
		return fmt.Errorf("%w: timer max (%d) and step (%d) must be positive", ErrInvalidParam, p.Timer.Max, p.Timer.Step)
	}
	if p.Timer.Initial < 0 || p.Timer.Initial > p.Timer.Max {
		return fmt.Errorf("%w: timer initial %d outside [0, %d]", ErrInvalidParam, p.Timer.Initial, p.Timer.Max)
	}
	if p.Timer.TickMs <= 0 {
		return fmt.Errorf("%w: timer tick_ms must be positive", ErrInvalidParam)
	}

	if p.Font.LabelSize <= 0 || p.Font.ModeSize <= 0 {
		return fmt.Errorf("%w: font sizes must be positive", ErrInvalidParam)
	}

	if p.Gpio.DebounceMs < 0 {
		return fmt.Errorf("%w: gpio debounce_ms must not be negative", ErrInvalidParam)
	}
	pins := map[string]string{}
	for _, pin := range []struct{ role, name string }{
		{"mode_button", p.Gpio.ModeButton},
		{"led_button", p.Gpio.LedButton},
		{"timer_button", p.Gpio.TimerButton},
		{"led", p.Gpio.Led},
	} {
		if pin.name == "" {
			return fmt.Errorf("%w: gpio %s is not set", ErrInvalidParam, pin.role)
		}
		if other, ok := pins[pin.name]; ok {
			return fmt.Errorf("%w: gpio %s used by both %s and %s", ErrInvalidParam, pin.name, other, pin.role)
		}
		pins[pin.name] = pin.role
	}

	return nil
}
