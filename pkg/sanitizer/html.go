// Package sanitizer cleans operator-supplied HTML before it enters a
// campaign message, and strips markup for plain-text alternatives.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy  *bluemonday.Policy
	stripPolicy *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// Inline markup that mail clients render consistently. The span
		// styles mirror what the rich-text renderer emits, so a value
		// produced by it survives sanitization untouched. Scripts, event
		// handlers, and javascript: URLs never do.
		richPolicy = bluemonday.NewPolicy()
		richPolicy.AllowElements(
			"p", "br",
			"b", "strong", "i", "em", "u", "s",
			"ul", "ol", "li",
			"span",
		)
		richPolicy.AllowStyles(
			"font-weight", "font-style", "text-decoration",
			"font-family", "font-size", "color",
		).OnElements("span")
		richPolicy.AllowAttrs("href").OnElements("a")
		richPolicy.AllowURLSchemes("http", "https", "mailto")
		richPolicy.RequireParseableURLs(true)

		stripPolicy = bluemonday.StrictPolicy()
	})
}

// RichText keeps mail-safe inline markup (paragraphs, bold, italic,
// underline, styled spans, lists, links) and drops everything else.
// Use for rich parameter values that are substituted into HTML bodies.
func RichText(s string) string {
	initPolicies()
	return richPolicy.Sanitize(s)
}

// lineBreaks maps the renderer's block boundaries to newlines before
// tags are stripped, so paragraphs do not run together in text output.
var lineBreaks = strings.NewReplacer(
	"<br>", "\n",
	"<br/>", "\n",
	"<br />", "\n",
	"</p>", "\n\n",
)

// PlainText strips all markup and decodes entities, yielding the
// plain-text alternative for an HTML body. Non-breaking spaces from the
// HTML renderer become regular spaces.
func PlainText(s string) string {
	initPolicies()
	out := html.UnescapeString(stripPolicy.Sanitize(lineBreaks.Replace(s)))
	out = strings.ReplaceAll(out, " ", " ")
	return strings.TrimSpace(out)
}
