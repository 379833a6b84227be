package core

import "strings"

// AnchorForName derives a stable HTML id fragment from a record name.
func AnchorForName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/', r == '.':
			b.WriteRune('-')
		}
	}
	anchor := strings.Trim(b.String(), "-")
	for strings.Contains(anchor, "--") {
		anchor = strings.ReplaceAll(anchor, "--", "-")
	}
	if anchor == "" {
		return "entry"
	}
	return anchor
}
