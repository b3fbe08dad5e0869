package http

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var inputPolicy = bluemonday.StrictPolicy()

// cleanInput strips markup from a form value. Entities are decoded again because
// the templates escape on output.
func cleanInput(raw string) string {
	if raw == "" {
		return ""
	}
	return html.UnescapeString(inputPolicy.Sanitize(raw))
}

func formFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
