package device

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jypelle/ofenpanel/internal/srv/config"
	"github.com/jypelle/ofenpanel/internal/srv/event"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func setLevel(p *gpiotest.Pin, l gpio.Level) {
	p.Lock()
	p.L = l
	p.Unlock()
}

func TestNewButtonPullUp(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO21", Num: 21, L: gpio.High}
	if _, err := newButton(event.MODE_BUTTON, pin, 50*time.Millisecond); err != nil {
		t.Fatalf("newButton() failed: %v", err)
	}
	if pin.P != gpio.PullUp {
		t.Errorf("pull = %v, want %v", pin.P, gpio.PullUp)
	}
}

func TestNewButtonUnknownPin(t *testing.T) {
	if _, err := NewButton(event.MODE_BUTTON, "NO_SUCH_PIN", 0); err == nil {
		t.Error("NewButton() succeeded with an unknown pin")
	}
}

func TestButtonRefresh(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO20", Num: 20, L: gpio.High}
	button, err := newButton(event.LED_BUTTON, pin, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	ch := make(chan event.ButtonEvent, 16)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ms := func(n int) time.Time { return start.Add(time.Duration(n) * time.Millisecond) }

	// A bouncing press, held, then a bouncing release.
	for _, step := range []struct {
		at    int
		level gpio.Level
	}{
		{0, gpio.High},
		{5, gpio.Low},
		{10, gpio.High},
		{15, gpio.Low},
		{20, gpio.High},
		{25, gpio.Low},
		{200, gpio.Low},
		{300, gpio.High},
		{305, gpio.Low},
		{310, gpio.High},
		{400, gpio.High},
	} {
		setLevel(pin, step.level)
		button.Refresh(ms(step.at), ch)
	}
	close(ch)

	var got []event.ButtonEvent
	for ev := range ch {
		got = append(got, ev)
	}
	want := []event.ButtonEvent{
		{ButtonId: event.LED_BUTTON, ButtonEventType: event.PRESS_EVENT_TYPE},
		{ButtonId: event.LED_BUTTON, ButtonEventType: event.RELEASE_EVENT_TYPE},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("events difference (-got +want):\n%s", diff)
	}
}

func TestButtonsPolling(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO16", Num: 16, L: gpio.High}
	button, err := newButton(event.TIMER_BUTTON, pin, 0)
	if err != nil {
		t.Fatal(err)
	}

	d := NewButtons(config.GpioParam{}, false)
	d.buttons = []*Button{button}
	d.startPolling()

	setLevel(pin, gpio.Low)
	select {
	case ev := <-d.EventChannel():
		want := event.ButtonEvent{ButtonId: event.TIMER_BUTTON, ButtonEventType: event.PRESS_EVENT_TYPE}
		if ev != want {
			t.Errorf("event = %+v, want %+v", ev, want)
		}
	case <-time.After(time.Second):
		t.Fatal("no press event")
	}

	d.StopSendingEvent()
}

func TestButtonsKeyboard(t *testing.T) {
	d := NewButtons(config.GpioParam{}, true)
	d.UseKeyboard(strings.NewReader("m\nLT\nx\n"))
	d.Start()

	var got []event.ButtonId
	for i := 0; i < 3; i++ {
		select {
		case ev := <-d.EventChannel():
			got = append(got, ev.ButtonId)
		case <-time.After(time.Second):
			t.Fatalf("only %d events received", i)
		}
	}
	want := []event.ButtonId{event.MODE_BUTTON, event.LED_BUTTON, event.TIMER_BUTTON}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("buttons difference (-got +want):\n%s", diff)
	}

	d.StopSendingEvent()
}
