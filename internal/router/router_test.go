package router

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/zjnav/zjnav/internal/command"
	"github.com/zjnav/zjnav/internal/host"
	"github.com/zjnav/zjnav/internal/keybind"
	"github.com/zjnav/zjnav/internal/trigger"
)

// hostCall records a single dispatch against the fake host.
type hostCall struct {
	method string
	dir    command.Direction
	chars  string
}

// fakeHost implements host.Host and records every call. Dispatched calls
// are also delivered on the dispatched channel when set, for tests that
// run the router loop in a separate goroutine.
type fakeHost struct {
	probeCh    chan host.ProbeResult
	listCalls  int
	calls      []hostCall
	dispatched chan hostCall
	failWith   error // returned from every action when set
}

func newFakeHost() *fakeHost {
	return &fakeHost{probeCh: make(chan host.ProbeResult, 16)}
}

func (f *fakeHost) ListClients(ctx context.Context) { f.listCalls++ }
func (f *fakeHost) Probes() <-chan host.ProbeResult { return f.probeCh }

func (f *fakeHost) MoveFocus(ctx context.Context, d command.Direction) error {
	return f.record(hostCall{method: "move_focus", dir: d})
}
func (f *fakeHost) MoveFocusOrTab(ctx context.Context, d command.Direction) error {
	return f.record(hostCall{method: "move_focus_or_tab", dir: d})
}
func (f *fakeHost) Resize(ctx context.Context, d command.Direction) error {
	return f.record(hostCall{method: "resize", dir: d})
}
func (f *fakeHost) WriteChars(ctx context.Context, chars string) error {
	return f.record(hostCall{method: "write_chars", chars: chars})
}

func (f *fakeHost) record(c hostCall) error {
	f.calls = append(f.calls, c)
	if f.dispatched != nil {
		f.dispatched <- c
	}
	return f.failWith
}

// clientList builds a probe payload whose first client runs the given command path.
func clientList(commandPath string) []byte {
	return []byte("CLIENT_ID ZELLIJ_PANE_ID RUNNING_COMMAND\n1 terminal_1 " + commandPath)
}

func newRouter(h host.Host, moveMod, resizeMod keybind.Mod) *Router {
	return New(h, Options{
		MoveMod:   moveMod,
		ResizeMod: resizeMod,
		Editors:   []string{"vim", "nvim"},
	})
}

func TestTriggerEnqueuesAndProbes(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: "left"})

	if r.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", r.Pending())
	}
	if h.listCalls != 1 {
		t.Errorf("list-clients probes issued = %d, want 1", h.listCalls)
	}
	if len(h.calls) != 0 {
		t.Errorf("no dispatch expected before a probe completes, got %v", h.calls)
	}
}

func TestUnrecognizedTriggerDropped(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	// Scenario D: unrecognized name.
	r.HandleTrigger(ctx, trigger.Message{Name: "jump", Payload: "left"})
	// Unrecognized direction.
	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: "north"})
	// Missing payload.
	r.HandleTrigger(ctx, trigger.Message{Name: "resize"})

	if r.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", r.Pending())
	}
	if h.listCalls != 0 {
		t.Errorf("probes issued = %d, want 0 (dropped triggers must not probe)", h.listCalls)
	}
}

func TestNativeDispatchForNonEditor(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	// Scenario A: occupant "bash" routes natively.
	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: "left"})
	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/bin/bash")})

	if len(h.calls) != 1 {
		t.Fatalf("got %d host calls, want 1", len(h.calls))
	}
	want := hostCall{method: "move_focus", dir: command.Left}
	if h.calls[0] != want {
		t.Errorf("call = %+v, want %+v", h.calls[0], want)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 after dispatch", r.Pending())
	}
}

func TestKeystrokeDispatchForEditor(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Alt, keybind.Ctrl)

	// Scenario B: occupant "nvim", move modifier Alt, move_focus up.
	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: "up"})
	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/usr/bin/nvim")})

	if len(h.calls) != 1 {
		t.Fatalf("got %d host calls, want 1", len(h.calls))
	}
	want := hostCall{method: "write_chars", chars: "\x1b@"}
	if h.calls[0] != want {
		t.Errorf("call = %+v, want %+v", h.calls[0], want)
	}
}

func TestResizeKeystrokesForEditor(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Alt, keybind.Ctrl)

	// Scenario C: occupant "vim", resize modifier Ctrl, resize down.
	r.HandleTrigger(ctx, trigger.Message{Name: "resize", Payload: "down"})
	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/usr/bin/vim")})

	if len(h.calls) != 1 {
		t.Fatalf("got %d host calls, want 1", len(h.calls))
	}
	want := hostCall{method: "write_chars", chars: "\x0a"}
	if h.calls[0] != want {
		t.Errorf("call = %+v, want %+v (keystrokes, not a native resize)", h.calls[0], want)
	}
}

func TestMoveFocusOrTabNative(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus_or_tab", Payload: "right"})
	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("N/A")})

	if len(h.calls) != 1 {
		t.Fatalf("got %d host calls, want 1", len(h.calls))
	}
	want := hostCall{method: "move_focus_or_tab", dir: command.Right}
	if h.calls[0] != want {
		t.Errorf("call = %+v, want %+v", h.calls[0], want)
	}
}

func TestFIFODrainsOnePerCompletion(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	directions := []string{"left", "right", "up", "down"}
	for _, d := range directions {
		r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: d})
	}
	if h.listCalls != len(directions) {
		t.Errorf("probes issued = %d, want %d (one per trigger, no dedup)", h.listCalls, len(directions))
	}

	// Each completion drains exactly one entry, in enqueue order.
	for i := range directions {
		r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/bin/zsh")})
		if len(h.calls) != i+1 {
			t.Fatalf("after completion %d: %d dispatches, want %d", i+1, len(h.calls), i+1)
		}
	}

	wantDirs := []command.Direction{command.Left, command.Right, command.Up, command.Down}
	for i, c := range h.calls {
		if c.method != "move_focus" || c.dir != wantDirs[i] {
			t.Errorf("dispatch %d = %+v, want move_focus %v", i, c, wantDirs[i])
		}
	}
}

func TestProbeCompletionWithEmptyQueue(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/usr/bin/nvim")})

	if len(h.calls) != 0 {
		t.Errorf("no dispatch expected with empty queue, got %v", h.calls)
	}
	if occ, ok := r.Occupant(); !ok || occ != "nvim" {
		t.Errorf("Occupant() = %q, %v; want %q, true", occ, ok, "nvim")
	}
}

func TestOccupantOverwrittenOnEveryCompletion(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/usr/bin/vim")})
	if occ, _ := r.Occupant(); occ != "vim" {
		t.Fatalf("Occupant() = %q, want vim", occ)
	}

	// A later probe reporting a plugin pane resets the occupant.
	r.HandleProbeResult(ctx, host.ProbeResult{
		Output: []byte("CLIENT_ID ZELLIJ_PANE_ID RUNNING_COMMAND\n1 plugin_2 file:/p.wasm"),
	})
	if _, ok := r.Occupant(); ok {
		t.Error("occupant should be unknown after a plugin-pane probe")
	}
}

func TestInvalidUTF8PayloadTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: "up"})
	r.HandleProbeResult(ctx, host.ProbeResult{Output: []byte{0xff, 0xfe, 0xfd}})

	// Classification absent: the command still dispatches, natively.
	if len(h.calls) != 1 {
		t.Fatalf("got %d host calls, want 1", len(h.calls))
	}
	if h.calls[0].method != "move_focus" {
		t.Errorf("call = %+v, want native move_focus", h.calls[0])
	}
	if _, ok := r.Occupant(); ok {
		t.Error("occupant should be unknown for an invalid-UTF8 payload")
	}
}

func TestProbeErrorTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/usr/bin/vim")})
	r.HandleTrigger(ctx, trigger.Message{Name: "resize", Payload: "left"})
	r.HandleProbeResult(ctx, host.ProbeResult{Err: fmt.Errorf("zellij exited 1")})

	// The failed probe overwrote the stale "vim" classification, so the
	// command routes natively.
	if len(h.calls) != 1 {
		t.Fatalf("got %d host calls, want 1", len(h.calls))
	}
	if h.calls[0].method != "resize" {
		t.Errorf("call = %+v, want native resize", h.calls[0])
	}
}

func TestDispatchErrorIsNotRequeued(t *testing.T) {
	ctx := context.Background()
	h := newFakeHost()
	h.failWith = fmt.Errorf("host unavailable")
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	r.HandleTrigger(ctx, trigger.Message{Name: "move_focus", Payload: "down"})
	r.HandleProbeResult(ctx, host.ProbeResult{Output: clientList("/bin/bash")})

	if r.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 (failed dispatch is not re-queued)", r.Pending())
	}
}

func TestRunLoopEndToEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newFakeHost()
	h.dispatched = make(chan hostCall, 1)
	r := newRouter(h, keybind.Ctrl, keybind.Alt)

	triggers := make(chan trigger.Message)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = r.Run(ctx, triggers)
	}()

	triggers <- trigger.Message{Name: "move_focus", Payload: "left"}
	// The router issued a probe; deliver its result asynchronously, as
	// the host would.
	h.probeCh <- host.ProbeResult{Output: clientList("/bin/bash")}

	select {
	case c := <-h.dispatched:
		want := hostCall{method: "move_focus", dir: command.Left}
		if c != want {
			t.Errorf("dispatched = %+v, want %+v", c, want)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("no dispatch within 1s")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Run did not exit after cancel")
	}
}
