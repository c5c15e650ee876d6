// Package router implements the focus/resize command state machine.
//
// The router receives trigger messages, queues the parsed command, and
// issues a list-clients probe to learn what occupies the focused pane.
// When a probe result arrives it stores the classified occupant and
// dispatches exactly one queued command: keystroke injection when the
// occupant is a modal editor, a native host action otherwise.
//
// The loop is single-threaded: one event is processed to completion
// before the next is considered, so occupant state and the pending queue
// need no locking. Probes carry no correlation token — a completion
// drains the oldest queue entry using the most recently learned occupant,
// which may differ from the occupant at enqueue time when triggers arrive
// faster than probes resolve. That race is the accepted design trade-off,
// not a bug.
package router

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjnav/zjnav/internal/classify"
	"github.com/zjnav/zjnav/internal/command"
	"github.com/zjnav/zjnav/internal/host"
	"github.com/zjnav/zjnav/internal/keybind"
	zjotel "github.com/zjnav/zjnav/internal/otel"
	"github.com/zjnav/zjnav/internal/queue"
	"github.com/zjnav/zjnav/internal/trigger"
)

var tracer = otel.Tracer("zjnav")

// Router routes directional commands to the host. Construct with New;
// a Router must not be copied once in use.
type Router struct {
	host      host.Host
	moveMod   keybind.Mod
	resizeMod keybind.Mod
	editors   []string
	metrics   *zjotel.Metrics // nil-safe

	// Owned state: touched only by the single event-processing goroutine.
	occupant string // "" until the first probe classifies one
	pending  queue.Queue[command.Command]
}

// Options configures a Router.
type Options struct {
	MoveMod   keybind.Mod
	ResizeMod keybind.Mod
	Editors   []string        // occupant names dispatched via keystrokes
	Metrics   *zjotel.Metrics // nil disables metrics
}

// New creates a Router bound to h.
func New(h host.Host, opts Options) *Router {
	return &Router{
		host:      h,
		moveMod:   opts.MoveMod,
		resizeMod: opts.ResizeMod,
		editors:   opts.Editors,
		metrics:   opts.Metrics,
	}
}

// Occupant returns the last classified occupant and whether one is known.
func (r *Router) Occupant() (string, bool) {
	return r.occupant, r.occupant != ""
}

// Pending returns the number of commands awaiting a probe completion.
func (r *Router) Pending() int {
	return r.pending.Len()
}

// Run processes triggers and probe results until ctx is cancelled or the
// trigger channel closes. Events are handled one at a time, in arrival
// order.
func (r *Router) Run(ctx context.Context, triggers <-chan trigger.Message) error {
	probes := r.host.Probes()
	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-triggers:
			if !ok {
				return nil
			}
			r.HandleTrigger(ctx, m)
		case p := <-probes:
			r.HandleProbeResult(ctx, p)
		}
	}
}

// HandleTrigger parses an inbound trigger. A recognized command is
// enqueued and a fresh probe is issued — unconditionally, even when one
// is already in flight. Unrecognized triggers are dropped silently.
func (r *Router) HandleTrigger(ctx context.Context, m trigger.Message) {
	cmd, ok := command.Parse(m.Name, m.Payload)
	if !ok {
		r.metrics.RecordDropped(ctx, m.Name)
		return
	}

	r.pending.Push(cmd)
	r.metrics.RecordTrigger(ctx, m.Name)

	r.host.ListClients(ctx)
	r.metrics.RecordProbeIssued(ctx)
}

// HandleProbeResult stores the freshly classified occupant, then drains
// and dispatches exactly one queued command. A failed probe or a payload
// that is not valid text counts as "classification absent": the occupant
// resets to unknown and the command goes out via the native path.
func (r *Router) HandleProbeResult(ctx context.Context, p host.ProbeResult) {
	r.occupant = ""
	if p.Err == nil && utf8.Valid(p.Output) {
		if occupant, ok := classify.Occupant(string(p.Output)); ok {
			r.occupant = occupant
		}
	}
	r.metrics.RecordProbeCompleted(ctx, r.occupant != "")

	cmd, ok := r.pending.Pop()
	if !ok {
		return
	}
	r.dispatch(ctx, cmd)
}

// dispatch executes one command against the host. Dispatch failures are
// reported on stderr and the command is not re-queued.
func (r *Router) dispatch(ctx context.Context, cmd command.Command) {
	ctx, span := tracer.Start(ctx, "dispatch",
		trace.WithAttributes(
			attribute.String("command", cmd.Kind.String()),
			attribute.String("direction", cmd.Direction.String()),
			attribute.String("occupant", r.occupant),
		))
	defer span.End()

	var err error
	if classify.IsEditor(r.occupant, r.editors) {
		keys := keybind.Keystrokes(cmd, r.moveMod, r.resizeMod)
		err = r.host.WriteChars(ctx, keys)
		r.metrics.RecordDispatch(ctx, zjotel.DispatchKeystrokes, cmd.Kind.String())
	} else {
		switch cmd.Kind {
		case command.MoveFocus:
			err = r.host.MoveFocus(ctx, cmd.Direction)
		case command.MoveFocusOrTab:
			err = r.host.MoveFocusOrTab(ctx, cmd.Direction)
		case command.Resize:
			err = r.host.Resize(ctx, cmd.Direction)
		}
		r.metrics.RecordDispatch(ctx, zjotel.DispatchNative, cmd.Kind.String())
	}

	if err != nil {
		span.RecordError(err)
		fmt.Fprintf(os.Stderr, "warning: dispatch %s %s: %v\n", cmd.Kind, cmd.Direction, err)
	}
}
