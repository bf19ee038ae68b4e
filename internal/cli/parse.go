package cli

import "strings"

// parseInput splits a line on whitespace; the command is lower-cased.
func parseInput(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}
