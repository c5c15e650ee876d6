// Package command defines the directional commands zjnav routes and the
// parsing of inbound trigger tokens into them.
//
// Trigger tokens are exact-match and case-sensitive. Anything unrecognized
// parses to ok=false — never an error — so the router can drop bad input
// silently.
package command

// Direction is one of the four pane navigation directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the trigger token for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Kind discriminates the three routed command variants.
type Kind int

const (
	// MoveFocus moves focus to the adjacent pane.
	MoveFocus Kind = iota
	// MoveFocusOrTab moves focus, switching tab at a boundary.
	MoveFocusOrTab
	// Resize increases the focused pane's size.
	Resize
)

// String returns the trigger name for the kind.
func (k Kind) String() string {
	switch k {
	case MoveFocus:
		return "move_focus"
	case MoveFocusOrTab:
		return "move_focus_or_tab"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Command is a single directional navigation or resize request. Immutable;
// constructed by Parse and consumed exactly once when the router dispatches it.
type Command struct {
	Kind      Kind
	Direction Direction
}

// ParseDirection maps a trigger payload token to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	default:
		return 0, false
	}
}

// Parse maps a trigger (name, payload) pair to a Command.
// Unrecognized names or payloads return ok=false.
func Parse(name, payload string) (Command, bool) {
	dir, ok := ParseDirection(payload)
	if !ok {
		return Command{}, false
	}

	switch name {
	case "move_focus":
		return Command{Kind: MoveFocus, Direction: dir}, true
	case "move_focus_or_tab":
		return Command{Kind: MoveFocusOrTab, Direction: dir}, true
	case "resize":
		return Command{Kind: Resize, Direction: dir}, true
	default:
		return Command{}, false
	}
}
