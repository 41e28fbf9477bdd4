// Package markdown renders blog post bodies into safe HTML.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	// Post bodies come from the backend CMS, but they still pass
	// through the UGC policy: the sanitizer is the trust boundary.
	policy := bluemonday.UGCPolicy()
	policy.AllowImages()

	return &Renderer{md: md, policy: policy}
}

// Render converts markdown to sanitized HTML. On a conversion error the
// content is returned escaped rather than lost.
func (r *Renderer) Render(content string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(content))
	}
	safe := r.policy.Sanitize(buf.String())
	return template.HTML(strings.TrimSpace(safe))
}
