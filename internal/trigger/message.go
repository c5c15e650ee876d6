// Package trigger provides the inbound control channel: directional
// navigation/resize requests arrive as JSON datagrams on a local unix
// socket and are forwarded to the router loop.
//
// A Zellij keybinding delivers a trigger by running the send client, e.g.
//
//	bind "Ctrl h" { Run "zjnav" "send" "move_focus" "left"; }
package trigger

import (
	"fmt"
	"strings"
)

// Message is a single inbound trigger: a command name and an optional
// direction payload. Whether the pair names a routable command is the
// router's concern, not the transport's.
type Message struct {
	Name    string `json:"name"`
	Payload string `json:"payload,omitempty"`
}

// Validate rejects messages the transport should not forward at all.
// An unrecognized but well-formed name still passes: the router drops it
// silently per its own rules.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
