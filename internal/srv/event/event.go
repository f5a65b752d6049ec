package event

// Ticker
type TickerEvent struct {
	Data interface{}
}

type TickerEventTickData struct{}

// Buttons
type ButtonId int

const (
	MODE_BUTTON ButtonId = iota
	LED_BUTTON
	TIMER_BUTTON
)

func (b ButtonId) String() string {
	switch b {
	case MODE_BUTTON:
		return "mode"
	case LED_BUTTON:
		return "led"
	case TIMER_BUTTON:
		return "timer"
	}
	return "unknown"
}

type ButtonEventType int

const (
	PRESS_EVENT_TYPE ButtonEventType = iota
	RELEASE_EVENT_TYPE
)

type ButtonEvent struct {
	ButtonId        ButtonId
	ButtonEventType ButtonEventType
}
