package engine

// ButtonState is the edge state of a button or key for the current frame.
type ButtonState uint8

const (
	Released     ButtonState = iota // up, and was up last frame
	JustPressed                     // went down this frame
	Pressed                         // held down
	JustReleased                    // went up this frame
)

func (b ButtonState) String() string {
	switch b {
	case Released:
		return "released"
	case JustPressed:
		return "just_pressed"
	case Pressed:
		return "pressed"
	case JustReleased:
		return "just_released"
	default:
		return "unknown"
	}
}

// Down reports whether the button is held this frame.
func (b ButtonState) Down() bool { return b == JustPressed || b == Pressed }

// Input is the polled input snapshot handed to a game once per frame.
type Input struct {
	Pointer Point
	Left    ButtonState
	Escape  ButtonState
	Space   ButtonState
}

// NextButtonState derives this frame's edge state from the previous one and
// whether the button is physically down now.
func NextButtonState(prev ButtonState, down bool) ButtonState {
	if down {
		if prev.Down() {
			return Pressed
		}
		return JustPressed
	}
	if prev.Down() {
		return JustReleased
	}
	return Released
}
