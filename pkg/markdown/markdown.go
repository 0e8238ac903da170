// Package markdown renders user-supplied markdown into sanitized HTML.
package markdown

import (
	"bytes"
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML and strips anything outside the
// user-generated-content allowlist. Safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns a Renderer with GitHub-flavoured markdown enabled. Raw HTML
// in the source is escaped by goldmark and whatever survives rendering is
// sanitized again.
func New() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	policy.RequireNoReferrerOnLinks(true)

	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
				gmhtml.WithXHTML(),
			),
		),
		policy: policy,
	}
}

// Render returns sanitized HTML for src. Empty input renders to "".
func (r *Renderer) Render(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		// Conversion only fails on writer errors; fall back to escaped text.
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return string(r.policy.SanitizeBytes(buf.Bytes()))
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Render renders src with a shared default Renderer.
func Render(src string) string {
	defaultOnce.Do(func() { defaultRenderer = New() })
	return defaultRenderer.Render(src)
}
