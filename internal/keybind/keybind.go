// Package keybind translates routed commands into the literal byte
// sequences a modal editor expects for the equivalent navigation or
// resize effect.
//
// Two keybinding families exist: Ctrl (single control characters, the
// terminal encodings of Ctrl+h/j/k/l) and Alt (ESC followed by a
// direction-specific printable character). Which family applies to a
// command is fixed at startup by configuration: one modifier governs
// focus movement, the other resizing.
package keybind

import (
	"fmt"
	"strings"

	"github.com/zjnav/zjnav/internal/command"
)

// Mod selects a keybinding family.
type Mod int

const (
	Ctrl Mod = iota
	Alt
)

// String returns the configuration token for the modifier.
func (m Mod) String() string {
	switch m {
	case Ctrl:
		return "ctrl"
	case Alt:
		return "alt"
	default:
		return "unknown"
	}
}

// ParseMod parses a configuration value into a Mod. Matching is
// case-insensitive. Unrecognized values are an error — the caller treats
// this as fatal at startup.
func ParseMod(s string) (Mod, error) {
	switch strings.ToLower(s) {
	case "ctrl":
		return Ctrl, nil
	case "alt":
		return Alt, nil
	default:
		return 0, fmt.Errorf("unknown modifier %q (supported: ctrl, alt)", s)
	}
}

// Keystrokes computes the byte sequence to inject for cmd. Focus commands
// use moveMod, resize commands use resizeMod. Pure; never sends anything.
func Keystrokes(cmd command.Command, moveMod, resizeMod Mod) string {
	mod := moveMod
	if cmd.Kind == command.Resize {
		mod = resizeMod
	}

	switch mod {
	case Alt:
		return altKeybinding(cmd.Direction)
	default:
		return ctrlKeybinding(cmd.Direction)
	}
}

// ctrlKeybinding returns the control character for Ctrl+h/j/k/l navigation.
func ctrlKeybinding(d command.Direction) string {
	switch d {
	case command.Left:
		return "\x08" // Ctrl+h
	case command.Down:
		return "\x0a" // Ctrl+j
	case command.Up:
		return "\x0b" // Ctrl+k
	default:
		return "\x0c" // Ctrl+l
	}
}

// altKeybinding returns ESC plus a direction-specific printable character.
func altKeybinding(d command.Direction) string {
	switch d {
	case command.Left:
		return "\x1b!"
	case command.Up:
		return "\x1b@"
	case command.Right:
		return "\x1b#"
	default:
		return "\x1b$"
	}
}
