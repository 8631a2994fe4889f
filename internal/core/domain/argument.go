package domain

import (
	"fmt"
	"strings"
)

// FormatArgument renders a named flag as --name="value".
// Embedded double quotes are escaped with a backslash; nothing else is escaped.
func FormatArgument(name, value string) string {
	return fmt.Sprintf("--%s=\"%s\"", name, EscapeEmbeddedQuotes(value))
}

// EscapeEmbeddedQuotes escapes double quotes with a backslash.
func EscapeEmbeddedQuotes(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}
