package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text",
			input:    "A week in the Dordogne",
			expected: "A week in the Dordogne",
		},
		{
			name:     "bold text",
			input:    "**chateau**",
			expected: "<strong>chateau</strong>",
		},
		{
			name:     "heading",
			input:    "## Where to eat",
			expected: "<h2>Where to eat</h2>",
		},
		{
			name:     "link",
			input:    "[Pornic](https://example.com/pornic)",
			expected: `href="https://example.com/pornic"`,
		},
		{
			name:     "image survives sanitization",
			input:    "![view](https://example.com/view.jpg)",
			expected: `<img src="https://example.com/view.jpg"`,
		},
		{
			name:     "script is stripped",
			input:    `hello <script>alert("x")</script>`,
			expected: "hello",
		},
		{
			name:     "gfm table",
			input:    "| Region |\n| --- |\n| Provence |",
			expected: "<table>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(r.Render(tt.input))
			if !strings.Contains(got, tt.expected) {
				t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRenderStripsScriptEntirely(t *testing.T) {
	got := string(New().Render(`<script>alert("x")</script>`))
	if strings.Contains(got, "script") || strings.Contains(got, "alert") {
		t.Errorf("sanitizer let script content through: %q", got)
	}
}
