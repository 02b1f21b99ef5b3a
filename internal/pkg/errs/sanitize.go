package errs

import "strings"

// sanitize flattens a value rendered into an error message to a single line.
func sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
