package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_EscapesHTML(t *testing.T) {
	t.Parallel()

	html := Render("<b> & </b>", nil)

	require.NotContains(t, html, "<b>")
	require.Contains(t, html, "&lt;b&gt;")
	require.Contains(t, html, "&amp;")
}

func TestRender_SpacesBecomeNbsp(t *testing.T) {
	t.Parallel()

	html := Render("a b", nil)

	require.Equal(t, "<p>\na&nbsp;b\n</p>", html)
}

func TestRender_SingleRunForUniformFormat(t *testing.T) {
	t.Parallel()

	tags := Tags{}
	tags.Mark(0, 5, TagBold)

	html := Render("Hello World", tags)

	require.Equal(t, 1, strings.Count(html, "<span"))
	require.Equal(t, "<p>\n<span style=\"font-weight: bold\">Hello</span>\n&nbsp;World\n</p>", html)
}

func TestRender_BoldItalicOrderFixed(t *testing.T) {
	t.Parallel()

	// Tag order in the set must not leak into style order.
	tags := Tags{}
	tags.Mark(0, 2, TagItalic, TagBold)

	html := Render("Hi", tags)

	require.Contains(t, html, `<span style="font-weight: bold; font-style: italic">Hi</span>`)
}

func TestRender_FontFamilyAndSize(t *testing.T) {
	t.Parallel()

	tags := Tags{}
	tags.Mark(0, 5, FontSize(14), FontFamily("Arial"))

	html := Render("Hello World", tags)

	require.Contains(t, html, "<span style=\"font-family: 'Arial'; font-size: 14pt\">Hello</span>")
	require.Contains(t, html, "\n&nbsp;World\n")
}

func TestRender_ParagraphCount(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, strings.Count(Render("Hello\n\nWorld", nil), "<p"))
	require.Equal(t, 2, strings.Count(Render("Hello\nWorld", nil), "<p"))
}

func TestRender_CollapsesBlankRuns(t *testing.T) {
	t.Parallel()

	// Three blank lines collapse into one placeholder paragraph, but every
	// skipped blank still occupies a position: B sits at offset 5.
	tags := Tags{}
	tags.Mark(5, 6, TagBold)

	html := Render("A\n\n\n\nB", tags)

	require.Equal(t, 3, strings.Count(html, "<p"))
	require.Equal(t, 1, strings.Count(html, "<p>&nbsp;</p>"))
	require.Contains(t, html, `<span style="font-weight: bold">B</span>`)
}

func TestRender_TrailingNewline(t *testing.T) {
	t.Parallel()

	html := Render("Hi\n", nil)

	require.Equal(t, "<p>\nHi\n</p>\n<p>&nbsp;</p>", html)
}

func TestRender_AllSpacesParagraphIsNotEmpty(t *testing.T) {
	t.Parallel()

	html := Render("  ", nil)

	require.Equal(t, "<p>\n&nbsp;&nbsp;\n</p>", html)
}

func TestRender_EmptyContent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "<p>&nbsp;</p>", Render("", nil))
}

func TestRender_SecondParagraphOffset(t *testing.T) {
	t.Parallel()

	// "Hi" occupies 0-1, the newline 2, so "Yo" starts at 3.
	tags := Tags{}
	tags.Mark(3, 5, TagUnderline)

	html := Render("Hi\nYo", tags)

	require.Contains(t, html, `<span style="text-decoration: underline">Yo</span>`)
	require.NotContains(t, html, ">Hi</span>")
}

func TestRender_SelectionMarkerIgnored(t *testing.T) {
	t.Parallel()

	// "sel" must neither split runs nor produce styles.
	tags := Tags{
		0: {TagBold, tagSelection},
		1: {TagBold},
	}

	html := Render("AB", tags)

	require.Equal(t, "<p>\n<span style=\"font-weight: bold\">AB</span>\n</p>", html)
}

func TestRender_UnknownTagSplitsWithoutStyle(t *testing.T) {
	t.Parallel()

	// An unknown tag maps to no style but still separates runs.
	tags := Tags{0: {"highlight"}}

	html := Render("AB", tags)

	require.Equal(t, "<p>\nA\nB\n</p>", html)
}

func TestRender_DuplicateTagsCollapse(t *testing.T) {
	t.Parallel()

	tags := Tags{
		0: {TagBold, TagBold},
		1: {TagBold},
	}

	html := Render("AB", tags)

	require.Equal(t, 1, strings.Count(html, "<span"))
}

func TestRender_MultibytePositions(t *testing.T) {
	t.Parallel()

	// Positions are rune offsets: the tag at 2 lands on "x", not inside a
	// multi-byte character.
	tags := Tags{}
	tags.Mark(2, 3, TagBold)

	html := Render("你好x", tags)

	require.Equal(t, "<p>\n你好\n<span style=\"font-weight: bold\">x</span>\n</p>", html)
}

func TestRender_TagBeyondContentIgnored(t *testing.T) {
	t.Parallel()

	tags := Tags{99: {TagBold}}

	require.Equal(t, "<p>\nHi\n</p>", Render("Hi", tags))
}
