package template

import (
	"fmt"
	"html"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/mailmerge/pkg/placeholder"
	"github.com/dmitrymomot/mailmerge/pkg/richtext"
	"github.com/dmitrymomot/mailmerge/pkg/sanitizer"
)

// Mode selects how the body is personalized and sent.
type Mode string

const (
	// ModeHTML renders the body to HTML and substitutes into the result.
	ModeHTML Mode = "html"
	// ModeText substitutes into the raw content and sends plain text.
	ModeText Mode = "text"
)

// Font is the campaign's base font, applied by the document shell.
type Font struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

// DefaultFont matches the classic mail-merge default.
var DefaultFont = Font{Family: "Times New Roman", Size: 12}

// Template is an immutable campaign template. Create one with New or
// Compose and share it freely; rendering is cached and concurrency-safe.
type Template struct {
	subject string
	content string
	tags    richtext.Tags
	font    Font
	mode    Mode

	composed   bool   // content is markdown, html holds the conversion
	html       string // set for composed templates
	richValues bool   // sanitize instead of escape substitution values

	renderOnce sync.Once
	rendered   string
}

// Option configures a Template at construction.
type Option func(*Template)

// WithTags sets the positional formatting tags. The map is copied.
func WithTags(tags richtext.Tags) Option {
	return func(t *Template) {
		t.tags = cloneTags(tags)
	}
}

// WithFont overrides the base font; zero fields keep their defaults.
func WithFont(f Font) Option {
	return func(t *Template) {
		if f.Family != "" {
			t.font.Family = f.Family
		}
		if f.Size > 0 {
			t.font.Size = f.Size
		}
	}
}

// WithMode sets the personalization mode.
func WithMode(m Mode) Option {
	return func(t *Template) {
		t.mode = m
	}
}

// WithRichValues sanitizes substitution values with the house bluemonday
// policy instead of escaping them, letting roster columns carry basic HTML.
func WithRichValues() Option {
	return func(t *Template) {
		t.richValues = true
	}
}

// New creates a rich-text template. Defaults: HTML mode, DefaultFont,
// no tags.
func New(subject, content string, opts ...Option) *Template {
	t := &Template{
		subject: subject,
		content: content,
		font:    DefaultFont,
		mode:    ModeHTML,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subject returns the subject template.
func (t *Template) Subject() string { return t.subject }

/// Content returns the raw body: rich text content, or markdown source for
// composed templates.
func (t *Template) Content() string { return t.content }

// Mode returns the personalization mode.
func (t *Template) Mode() Mode { return t.mode }

// Font returns the base font.
func (t *Template) Font() Font { return t.font }

// HTML returns the body rendered to an HTML fragment. The result is
// computed once and cached.
func (t *Template) HTML() string {
	t.renderOnce.Do(func() {
		if t.composed {
			t.rendered = t.html
			return
		}
		t.rendered = richtext.Render(t.content, t.tags)
	})
	return t.rendered
}

// Params returns the placeholder identifiers used by subject and body.
func (t *Template) Params() []string {
	return placeholder.ParamsMulti(t.subject, t.content)
}

// Validate checks every template parameter against the available
// identifiers and reports the undefined ones.
func (t *Template) Validate(available []string) error {
	var missing []string
	for _, p := range t.Params() {
		if !slices.Contains(available, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUndefinedParams, strings.Join(missing, ", "))
	}
	return nil
}

// Personalize substitutes one recipient's variables into the subject and
// body. The body is HTML in HTML mode (escaped or sanitized values), raw
// text in text mode.
func (t *Template) Personalize(vars map[string]string) (subject, body string) {
	subject = placeholder.Substitute(t.subject, vars)
	if t.mode == ModeText {
		return subject, placeholder.Substitute(t.content, vars)
	}

	safe := make(map[string]string, len(vars))
	for k, v := range vars {
		if t.richValues {
			safe[k] = sanitizer.RichText(v)
		} else {
			safe[k] = html.EscapeString(v)
		}
	}
	return subject, placeholder.Substitute(t.HTML(), safe)
}

// WrapDocument wraps an HTML body fragment in a full document shell that
// applies the campaign font.
func (t *Template) WrapDocument(fragment string) string {
	var b strings.Builder
	b.Grow(len(fragment) + 256)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n</head>\n")
	fmt.Fprintf(&b, "<body style=\"font-family: '%s'; font-size: %dpt\">\n", t.font.Family, t.font.Size)
	b.WriteString(fragment)
	b.WriteString("\n</body>\n</html>")
	return b.String()
}

// Document is WrapDocument applied to the template's own rendered body.
func (t *Template) Document() string {
	return t.WrapDocument(t.HTML())
}

func cloneTags(tags richtext.Tags) richtext.Tags {
	if tags == nil {
		return nil
	}
	out := make(richtext.Tags, len(tags))
	for pos, names := range tags {
		out[pos] = slices.Clone(names)
	}
	return out
}
