package host

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/zjnav/zjnav/internal/command"
)

// Zellij implements the Host interface by shelling out to `zellij action`.
type Zellij struct {
	probes chan ProbeResult
}

// NewZellij creates a Zellij host.
func NewZellij() *Zellij {
	return &Zellij{
		// Buffered so probe goroutines never block if the router is
		// mid-dispatch when a result lands.
		probes: make(chan ProbeResult, 16),
	}
}

// ListClients launches the probe in the background and returns immediately.
// Errors are delivered as a ProbeResult with an empty payload — downstream
// treats that as "classification absent", never as fatal.
func (z *Zellij) ListClients(ctx context.Context) {
	go func() {
		out, err := z.ListClientsOnce(ctx)
		z.probes <- ProbeResult{Output: out, Err: err}
	}()
}

// ListClientsOnce runs the list-clients probe synchronously. Used by the
// async probe path and directly by one-shot commands (classify, watch).
func (z *Zellij) ListClientsOnce(ctx context.Context) ([]byte, error) {
	return z.run(ctx, "list-clients")
}

// Probes returns the probe result channel.
func (z *Zellij) Probes() <-chan ProbeResult {
	return z.probes
}

// MoveFocus moves focus to the adjacent pane.
func (z *Zellij) MoveFocus(ctx context.Context, d command.Direction) error {
	_, err := z.run(ctx, "move-focus", d.String())
	return err
}

// MoveFocusOrTab moves focus, switching tab at a boundary.
func (z *Zellij) MoveFocusOrTab(ctx context.Context, d command.Direction) error {
	_, err := z.run(ctx, "move-focus-or-tab", d.String())
	return err
}

// Resize increases the focused pane's size in the given direction.
func (z *Zellij) Resize(ctx context.Context, d command.Direction) error {
	_, err := z.run(ctx, "resize", "increase", d.String())
	return err
}

// WriteChars injects a literal character sequence into the focused pane.
func (z *Zellij) WriteChars(ctx context.Context, chars string) error {
	_, err := z.run(ctx, "write-chars", chars)
	return err
}

// run executes a zellij action subcommand and returns its stdout.
func (z *Zellij) run(ctx context.Context, args ...string) ([]byte, error) {
	full := append([]string{"action"}, args...)
	cmd := exec.CommandContext(ctx, "zellij", full...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("zellij action %s: %w: %s", args[0], err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("zellij action %s: %w", args[0], err)
	}
	return out, nil
}
