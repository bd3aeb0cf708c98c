package template

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// buttonStyle is inlined on every rendered button because mail clients
// ignore stylesheets.
const buttonStyle = "display: inline-block; padding: 12px 24px; background-color: #2563eb; color: #ffffff; text-decoration: none; border-radius: 6px"

var buttonMarker = []byte("[!button|")

var kindButton = ast.NewNodeKind("Button")

// buttonNode is an inline AST node for the [!button|Label](url) syntax.
type buttonNode struct {
	ast.BaseInline
	label []byte
	url   []byte
}

func (n *buttonNode) Kind() ast.NodeKind { return kindButton }

func (n *buttonNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Label": string(n.label),
		"URL":   string(n.url),
	}, nil)
}

type buttonParser struct{}

func (buttonParser) Trigger() []byte { return []byte{'['} }

func (buttonParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	if !bytes.HasPrefix(line, buttonMarker) {
		return nil
	}

	labelEnd := bytes.Index(line, []byte("]("))
	if labelEnd < 0 {
		return nil
	}
	urlEnd := bytes.IndexByte(line[labelEnd:], ')')
	if urlEnd < 0 {
		return nil
	}

	label := line[len(buttonMarker):labelEnd]
	url := line[labelEnd+2 : labelEnd+urlEnd]
	if len(label) == 0 || len(url) == 0 {
		return nil
	}

	block.Advance(labelEnd + urlEnd + 1)
	return &buttonNode{label: label, url: url}
}

type buttonRenderer struct{}

func (r buttonRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindButton, r.renderButton)
}

func (buttonRenderer) renderButton(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*buttonNode)
	_, _ = w.WriteString(`<a href="`)
	_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.url, true)))
	_, _ = w.WriteString(`" style="` + buttonStyle + `">`)
	_, _ = w.Write(util.EscapeHTML(n.label))
	_, _ = w.WriteString(`</a>`)
	return ast.WalkContinue, nil
}

// buttonExtension registers the button parser and renderer ahead of the
// standard link parser so the marker is not consumed as a regular link.
type buttonExtension struct{}

func (buttonExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithInlineParsers(
		util.Prioritized(buttonParser{}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(buttonRenderer{}, 500),
	))
}
