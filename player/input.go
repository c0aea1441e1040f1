package player

// MouseButton is one of the two pointer buttons the player edits the world with.
type MouseButton uint8

const (
	// ButtonLeft breaks the block looked at.
	ButtonLeft MouseButton = iota
	// ButtonRight places the selected block against the face looked at.
	ButtonRight

	buttonCount
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	}
	return "unknown"
}

// Input is the pointer state the player reads each tick.
type Input interface {
	// ButtonDown returns true while the button is held.
	ButtonDown(b MouseButton) bool
	// ScrollDelta returns the scroll wheel movement since the last tick.
	ScrollDelta() int
	// Active returns false while input should not edit the world, for example while a menu is open.
	Active() bool
}

// buttons tracks held buttons between ticks to turn held state into presses.
type buttons struct {
	down [buttonCount]bool
}

// update records the current state of the buttons and returns which were pressed since the last
// update.
func (b *buttons) update(in Input) (pressed [buttonCount]bool) {
	for i := range b.down {
		held := in.ButtonDown(MouseButton(i))
		pressed[i] = held && !b.down[i]
		b.down[i] = held
	}
	return pressed
}
