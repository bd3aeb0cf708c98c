package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var (
	mdOnce sync.Once
	md     goldmark.Markdown
)

func markdownConverter() goldmark.Markdown {
	mdOnce.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(buttonExtension{}))
	})
	return md
}

// Compose reads a markdown file with optional YAML frontmatter and converts
// it into an HTML-mode Template. The frontmatter "subject" key sets the
// subject template; font and value handling come from options. Placeholders
// in the markdown survive conversion and personalize as usual.
func Compose(fsys fs.FS, name string, opts ...Option) (*Template, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	meta, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var htmlBuf bytes.Buffer
	if err := markdownConverter().Convert(body, &htmlBuf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComposeFailed, err)
	}

	subject, _ := meta["subject"].(string)
	t := New(subject, string(body), opts...)
	t.mode = ModeHTML
	t.composed = true
	t.html = htmlBuf.String()
	return t, nil
}

// splitFrontmatter separates leading "---" delimited YAML metadata from
// the markdown body. Content without an opening delimiter is all body.
func splitFrontmatter(content []byte) (map[string]any, []byte, error) {
	delim := []byte("---")
	if !bytes.HasPrefix(content, delim) {
		return map[string]any{}, content, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delim), "\r\n")
	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, delim)
	if end < 0 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	metaBytes := rest[:end]
	body := rest[end+len(delim):]
	if len(body) > 0 && body[0] == '\r' {
		body = body[1:]
	}
	if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}

	meta := map[string]any{}
	if len(bytes.TrimSpace(metaBytes)) > 0 {
		if err := yaml.Unmarshal(metaBytes, &meta); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	return meta, body, nil
}
