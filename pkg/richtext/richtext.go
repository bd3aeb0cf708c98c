package richtext

import (
	"html"
	"slices"
	"strconv"
	"strings"
)

// Formatting tag names understood by Render. Font tags carry their value
// after the colon, e.g. "font-family:Arial" or "font-size:14".
const (
	TagBold      = "bold"
	TagItalic    = "italic"
	TagUnderline = "underline"

	prefixFontFamily = "font-family:"
	prefixFontSize   = "font-size:"

	// tagSelection marks the editor's current selection. It carries no
	// formatting and is ignored entirely.
	tagSelection = "sel"
)

// Tags maps absolute rune positions in the content to the formatting tags
// active at that position. Positions count every rune, including the
// newline between paragraphs.
type Tags map[int][]string

// Mark adds the given tags to every position in [from, to).
func (t Tags) Mark(from, to int, names ...string) {
	for pos := from; pos < to; pos++ {
		t[pos] = append(t[pos], names...)
	}
}

// FontFamily returns the tag selecting a font family by name.
func FontFamily(name string) string { return prefixFontFamily + name }

// FontSize returns the tag selecting a font size in points.
func FontSize(pt int) string { return prefixFontSize + strconv.Itoa(pt) }

// Render converts content with positional tags into an HTML fragment.
// Each paragraph becomes a <p> block, each uniformly-formatted run inside
// it becomes one line, and blank-line runs collapse into one <p>&nbsp;</p>.
// Lines are joined with "\n".
func Render(content string, tags Tags) string {
	paragraphs := strings.Split(content, "\n")
	lines := make([]string, 0, len(paragraphs)*3)

	pos := 0 // absolute rune offset of the current paragraph's first rune
	lastEmpty := false

	for _, paragraph := range paragraphs {
		if paragraph == "" {
			if lastEmpty {
				pos++
				continue
			}
			lines = append(lines, "<p>&nbsp;</p>")
			lastEmpty = true
			pos++
			continue
		}
		lastEmpty = false

		lines = append(lines, "<p>")
		runes := []rune(paragraph)
		for start := 0; start < len(runes); {
			current := activeTags(tags, pos+start)
			end := start + 1
			for end < len(runes) && sameTagSet(activeTags(tags, pos+end), current) {
				end++
			}

			text := escapeRun(string(runes[start:end]))
			if style := styleFor(current); style != "" {
				lines = append(lines, `<span style="`+style+`">`+text+`</span>`)
			} else {
				lines = append(lines, text)
			}
			start = end
		}
		lines = append(lines, "</p>")

		pos += len(runes) + 1 // +1 for the newline
	}

	return strings.Join(lines, "\n")
}

// activeTags returns the tag set at pos with the selection marker removed
// and duplicates collapsed, preserving first-appearance order.
func activeTags(tags Tags, pos int) []string {
	raw := tags[pos]
	if len(raw) == 0 {
		return nil
	}
	active := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag == tagSelection || slices.Contains(active, tag) {
			continue
		}
		active = append(active, tag)
	}
	return active
}

// sameTagSet compares two deduplicated tag slices as sets.
func sameTagSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for _, tag := range a {
		if !slices.Contains(b, tag) {
			return false
		}
	}
	return true
}

// styleFor maps a tag set to an inline style string. Order is fixed: weight,
// style, decoration, font family, font size. Tags that map to nothing
// contribute no style (but still split runs, since run boundaries compare
// whole tag sets). The first font-family/font-size tag in the set wins.
func styleFor(tags []string) string {
	if len(tags) == 0 {
		return ""
	}

	styles := make([]string, 0, len(tags))
	if slices.Contains(tags, TagBold) {
		styles = append(styles, "font-weight: bold")
	}
	if slices.Contains(tags, TagItalic) {
		styles = append(styles, "font-style: italic")
	}
	if slices.Contains(tags, TagUnderline) {
		styles = append(styles, "text-decoration: underline")
	}

	var family, size string
	var hasFamily, hasSize bool
	for _, tag := range tags {
		if !hasFamily && strings.HasPrefix(tag, prefixFontFamily) {
			family, hasFamily = strings.TrimPrefix(tag, prefixFontFamily), true
		}
		if !hasSize && strings.HasPrefix(tag, prefixFontSize) {
			size, hasSize = strings.TrimPrefix(tag, prefixFontSize), true
		}
	}
	if hasFamily {
		styles = append(styles, "font-family: '"+family+"'")
	}
	if hasSize {
		styles = append(styles, "font-size: "+size+"pt")
	}

	return strings.Join(styles, "; ")
}

// escapeRun HTML-escapes run text, then turns spaces into &nbsp; so
// indentation and double spaces survive HTML whitespace collapsing.
// Escaping must come first or the entity text itself would be escaped.
func escapeRun(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), " ", "&nbsp;")
}
