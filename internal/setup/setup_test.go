package setup

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villafrance/frontend/internal/handler"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{
			name:     "short string untouched",
			input:    "Provence",
			n:        20,
			expected: "Provence",
		},
		{
			name:     "cuts at word boundary",
			input:    "A week in the Dordogne valley",
			n:        15,
			expected: "A week in the…",
		},
		{
			name:     "single long word cut mid-way",
			input:    "unpronounceable",
			n:        6,
			expected: "unpron…",
		},
		{
			name:     "accented text stays valid utf-8",
			input:    "Côte d'Azur et côtes méditerranéennes",
			n:        13,
			expected: "Côte d'Azur…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.n)
			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestHomeTemplateRendersStaticStrips(t *testing.T) {
	templates := mustLoadTemplates("../../templates")
	tmpl, ok := templates["index.html"]
	require.True(t, ok)

	buf := new(bytes.Buffer)
	require.NoError(t, tmpl.Execute(buf, handler.TemplateData{Data: handler.HomePageData{}}))

	page := buf.String()
	assert.Contains(t, page, "The perfect company for booking in France")
	assert.Contains(t, page, "Sarah M., London")
	assert.Contains(t, page, "Why book with Villa France?")
	assert.Contains(t, page, "No Hidden Charges")
	assert.Contains(t, page, "<title>Villa France | Luxury Holiday Rentals</title>")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1 July 2026", formatDate("2026-07-01"))
	// non-ISO input passes through untouched
	assert.Equal(t, "tomorrow", formatDate("tomorrow"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€420", formatPrice(420))
	assert.Equal(t, "€1250", formatPrice(1249.6))
}
