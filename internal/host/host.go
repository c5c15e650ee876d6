// Package host wraps the outbound collaborator calls to the Zellij
// multiplexer: the list-clients probe, the native focus/resize actions,
// and raw keystroke injection into the focused pane.
//
// This package is pure transport. It never interprets probe output —
// classification is the classify package's job.
package host

import (
	"context"

	"github.com/zjnav/zjnav/internal/command"
)

// ProbeResult is the asynchronous outcome of one list-clients probe.
// There is no correlation token linking a result back to the trigger that
// caused it; the router consumes results strictly in arrival order.
type ProbeResult struct {
	Output []byte
	Err    error
}

// Host abstracts the multiplexer operations the router needs.
type Host interface {
	// ListClients issues a list-clients probe and returns immediately.
	// The result arrives later on the Probes channel. No timeout, no
	// retry: a probe that never resolves leaves its queued command
	// pending forever.
	ListClients(ctx context.Context)

	// Probes returns the channel probe results are delivered on.
	Probes() <-chan ProbeResult

	// MoveFocus moves focus to the adjacent pane in the given direction.
	MoveFocus(ctx context.Context, d command.Direction) error

	// MoveFocusOrTab moves focus in the given direction, switching tab
	// at a screen boundary.
	MoveFocusOrTab(ctx context.Context, d command.Direction) error

	// Resize increases the focused pane's size in the given direction.
	Resize(ctx context.Context, d command.Direction) error

	// WriteChars injects a literal character sequence into the focused
	// pane's input stream.
	WriteChars(ctx context.Context, chars string) error
}
