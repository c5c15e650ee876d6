// Package classify extracts the focused pane's occupant from the output of
// the host's list-clients probe.
//
// The probe output is whitespace-separated tabular text: one header line
// followed by zero or more client rows. Column 2 is the pane identifier
// (prefix "terminal" marks a terminal-backed pane, "plugin" a plugin pane);
// column 3 is either "N/A" or the path of the command running in the pane.
//
// Classification is pure and total: every malformed or non-terminal input
// yields ok=false, never an error.
package classify

import "strings"

// noCommand is the sentinel the host prints when a terminal pane has no
// resolvable child process (e.g. a bare shell).
const noCommand = "N/A"

// Occupant returns the name of the program running in the pane associated
// with the first listed client, or ok=false when no occupant can be resolved.
func Occupant(clientList string) (string, bool) {
	lines := strings.Split(clientList, "\n")
	if len(lines) < 2 {
		return "", false
	}

	// First data line after the header.
	columns := strings.Fields(lines[1])
	if len(columns) < 3 {
		return "", false
	}

	if !strings.HasPrefix(columns[1], "terminal") {
		return "", false
	}
	if columns[2] == noCommand {
		return "", false
	}

	// Final path segment of the command column.
	segments := strings.Split(columns[2], "/")
	return segments[len(segments)-1], true
}

// IsEditor reports whether occupant names a modal editor that consumes
// directional keys itself. The editors slice comes from configuration.
func IsEditor(occupant string, editors []string) bool {
	for _, e := range editors {
		if occupant == e {
			return true
		}
	}
	return false
}
