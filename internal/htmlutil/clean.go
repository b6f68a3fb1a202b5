package htmlutil

import (
	"strings"

	"github.com/k3a/html2text"
)

// ToText converts HTML to plain text using a proper HTML parser.
// Handles entities, strips tags, and preserves readable text.
func ToText(s string) string {
	return html2text.HTML2Text(s)
}

// CleanField reduces user-supplied free text (names, cities) to a single
// trimmed line of plain text.
func CleanField(s string) string {
	return strings.Join(strings.Fields(ToText(s)), " ")
}
