package trigger

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
)

// DefaultSocketPath returns the trigger socket location: under
// $XDG_RUNTIME_DIR when set, otherwise a per-uid temp directory.
func DefaultSocketPath() string {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir != "" {
		return filepath.Join(runtimeDir, "zjnav", "trigger.sock")
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("zjnav-%d", os.Getuid()), "trigger.sock")
}

// Send delivers one trigger message to the router socket. Fire-and-forget:
// a successful write says nothing about whether the router will act on it.
func Send(socketPath string, m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode trigger: %w", err)
	}

	addr, err := net.ResolveUnixAddr("unixgram", socketPath)
	if err != nil {
		return fmt.Errorf("resolve socket %s: %w", socketPath, err)
	}
	conn, err := net.DialUnix("unixgram", nil, addr)
	if err != nil {
		return fmt.Errorf("dial socket %s (is the router running?): %w", socketPath, err)
	}
	defer conn.Close()

	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("send trigger: %w", err)
	}
	return nil
}
