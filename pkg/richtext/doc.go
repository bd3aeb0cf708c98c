// Package richtext renders plain text with positional formatting tags into
// HTML paragraphs.
//
// The input model comes from rich-text editors that address formatting by
// character position: the text is one string, and a tag map assigns each
// absolute rune position the set of tags active there (bold, italic,
// underline, font-family:<name>, font-size:<pt>). Newlines separate
// paragraphs and occupy one position each.
//
//	import "github.com/dmitrymomot/mailmerge/pkg/richtext"
//
//	tags := richtext.Tags{}
//	tags.Mark(0, 5, richtext.TagBold)
//	html := richtext.Render("Hello World", tags)
//	// <p>
//	// <span style="font-weight: bold">Hello</span>
//	// &nbsp;World
//	// </p>
//
// # Output Shape
//
// Consecutive positions with an identical tag set form a run; each run
// becomes one output line, wrapped in <span style="..."> when its tags map
// to styles. Paragraphs are wrapped in <p>...</p>, and runs of blank lines
// collapse into a single <p>&nbsp;</p>. Run text is HTML-escaped and spaces
// become &nbsp; so leading indentation survives mail clients. The result is
// a fragment, not a full document; see the template package for the
// document shell.
//
// Style order within a span is fixed regardless of tag order: weight,
// style, decoration, then font family and size.
//
// Render is a pure function and safe for concurrent use.
package richtext
