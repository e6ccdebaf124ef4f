package notification

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "plain text untouched", input: "Bonjour, ça va ?", expected: "Bonjour, ça va ?"},
		{name: "ampersand", input: "Tom & Jerry", expected: "Tom &amp; Jerry"},
		{name: "angle brackets", input: "<b>bold</b>", expected: "&lt;b&gt;bold&lt;/b&gt;"},
		{name: "double quote", input: `say "hi"`, expected: "say &quot;hi&quot;"},
		{
			name:     "script tag",
			input:    `<script>alert("1")</script>`,
			expected: "&lt;script&gt;alert(&quot;1&quot;)&lt;/script&gt;",
		},
		{
			// Single pass: entities already present are escaped again,
			// never collapsed or skipped.
			name:     "pre-escaped entity",
			input:    "&lt;div&gt;",
			expected: "&amp;lt;div&amp;gt;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

// Escaped output must contain no raw markup characters, and ampersands
// only as the head of an entity produced by the escaper.
func TestEscape_OutputIsMarkupSafe(t *testing.T) {
	inputs := []string{
		`<script>alert(1)</script>`,
		`"><img src=x onerror=alert(1)>`,
		"a && b < c > d",
		"&amp;&lt;&gt;&quot;",
		"plain",
	}

	for _, input := range inputs {
		out := Escape(input)
		assert.NotContains(t, out, "<")
		assert.NotContains(t, out, ">")
		assert.NotContains(t, out, `"`)

		rest := out
		for {
			i := strings.Index(rest, "&")
			if i < 0 {
				break
			}
			rest = rest[i:]
			ok := strings.HasPrefix(rest, "&amp;") ||
				strings.HasPrefix(rest, "&lt;") ||
				strings.HasPrefix(rest, "&gt;") ||
				strings.HasPrefix(rest, "&quot;")
			assert.True(t, ok, "raw ampersand in escaped output of %q: %q", input, out)
			rest = rest[1:]
		}
	}
}
