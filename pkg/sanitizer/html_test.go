package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailmerge/pkg/sanitizer"
)

func TestRichText_KeepsMailSafeMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text untouched",
			input: "Hello Ann",
			want:  "Hello Ann",
		},
		{
			name:  "bold and italic",
			input: "<b>Pro</b> plan, <em>monthly</em>",
			want:  "<b>Pro</b> plan, <em>monthly</em>",
		},
		{
			name:  "paragraphs and breaks",
			input: "<p>Hi</p><br>",
			want:  "<p>Hi</p><br>",
		},
		{
			name:  "list",
			input: "<ul><li>one</li><li>two</li></ul>",
			want:  "<ul><li>one</li><li>two</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.RichText(tt.input))
		})
	}
}

func TestRichText_KeepsRendererSpans(t *testing.T) {
	t.Parallel()

	// Output of the rich-text renderer must survive a sanitizer pass.
	in := `<span style="font-weight: bold; font-family: 'Arial'; font-size: 14pt">Hello</span>`
	out := sanitizer.RichText(in)
	require.Contains(t, out, "font-weight")
	require.Contains(t, out, "font-family")
	require.Contains(t, out, "font-size")
	require.Contains(t, out, "Hello")
}

func TestRichText_DropsDangerousMarkup(t *testing.T) {
	t.Parallel()

	t.Run("script with content", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.RichText(`before<script>alert(1)</script>after`)
		require.Equal(t, "beforeafter", out)
	})

	t.Run("event handler attribute", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.RichText(`<b onclick="steal()">click</b>`)
		require.Equal(t, "<b>click</b>", out)
	})

	t.Run("javascript URL", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.RichText(`<a href="javascript:alert(1)">x</a>`)
		require.NotContains(t, out, "javascript")
		require.Contains(t, out, "x")
	})

	t.Run("disallowed style property", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.RichText(`<span style="position: absolute">x</span>`)
		require.NotContains(t, out, "position")
		require.Contains(t, out, "x")
	})

	t.Run("iframe", func(t *testing.T) {
		t.Parallel()

		out := sanitizer.RichText(`<iframe src="https://evil.example"></iframe>ok`)
		require.NotContains(t, out, "iframe")
		require.Contains(t, out, "ok")
	})
}

func TestRichText_AllowsMailLinks(t *testing.T) {
	t.Parallel()

	out := sanitizer.RichText(`<a href="https://example.com/offer">offer</a>`)
	require.Contains(t, out, `href="https://example.com/offer"`)

	out = sanitizer.RichText(`<a href="mailto:support@example.com">write us</a>`)
	require.Contains(t, out, `href="mailto:support@example.com"`)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips inline tags",
			input: "<b>Bold</b> move",
			want:  "Bold move",
		},
		{
			name:  "paragraphs become blank lines",
			input: "<p>Hello</p><p>World</p>",
			want:  "Hello\n\nWorld",
		},
		{
			name:  "breaks become newlines",
			input: "Line<br>break",
			want:  "Line\nbreak",
		},
		{
			name:  "entities decoded",
			input: "5 &lt; 6 &amp; 7 &gt; 2",
			want:  "5 < 6 & 7 > 2",
		},
		{
			name:  "non-breaking spaces become spaces",
			input: "Dear&nbsp;Ann,&nbsp;welcome!",
			want:  "Dear Ann, welcome!",
		},
		{
			name:  "script content dropped",
			input: "<script>alert(1)</script>ok",
			want:  "ok",
		},
		{
			name:  "styled span keeps only text",
			input: `<span style="font-weight: bold">Hello</span> there`,
			want:  "Hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.PlainText(tt.input))
		})
	}
}
