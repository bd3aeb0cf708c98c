// Package template holds the campaign template: subject and body with
// placeholder parameters, plus everything needed to turn it into a
// per-recipient email.
//
// Two authoring paths produce the same Template type:
//
//   - Rich text: plain content with positional formatting tags (see the
//     richtext package), usually loaded from a campaign YAML file.
//   - Markdown: a file with YAML frontmatter, converted once via goldmark
//     (Compose).
//
// # Personalization
//
// Personalize substitutes one recipient's variables into the subject and
// body. In HTML mode the body is rendered to HTML once and substitution
// happens in the rendered output, with variable values HTML-escaped so
// roster data cannot inject markup. WithRichValues switches escaping to
// bluemonday sanitization for values that deliberately carry basic HTML.
//
// A placeholder whose characters do not share one formatting run is split
// across spans and will not substitute. Keep each {name} uniformly
// formatted; identifiers cannot contain spaces, so &nbsp; rewriting never
// breaks them.
//
// # Campaign Files
//
// Load reads a YAML campaign file:
//
//	subject: "Welcome, {name}"
//	content: "Hello {name},\nyour plan: {plan}"
//	mode: html
//	font: {family: Arial, size: 14}
//	tags:
//	  0: [bold]
//	  1: [bold]
//	params:
//	  - {label: Plan, ident: plan}
//
// Decoding is strict: unknown fields fail, and tag keys must be bare YAML
// integers.
package template
