package host

import (
	"fmt"
	"os"
	"os/exec"
)

// Detect verifies a Zellij session is reachable and returns a host bound
// to it. Checks environment variables first (set inside any Zellij pane),
// then falls back to asking a running server. Startup refuses to proceed
// without a host — there is no degraded mode.
func Detect() (*Zellij, error) {
	if os.Getenv("ZELLIJ") != "" || os.Getenv("ZELLIJ_SESSION_NAME") != "" {
		return NewZellij(), nil
	}

	if path, err := exec.LookPath("zellij"); err == nil && path != "" {
		cmd := exec.Command("zellij", "list-sessions", "-n")
		if err := cmd.Run(); err == nil {
			return NewZellij(), nil
		}
	}

	return nil, fmt.Errorf("no zellij session detected (run inside zellij or start a session first)")
}
