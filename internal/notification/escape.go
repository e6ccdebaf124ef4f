package notification

import "strings"

// htmlEscaper substitutes all four characters in a single left-to-right
// pass: an ampersand produced by one substitution is never rescanned,
// so entities are not double-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape converts arbitrary user-supplied text into HTML-safe text for
// embedding in the notification document.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
