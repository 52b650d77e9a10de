package document

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/Vivtek/Lingua-Tok/internal/tok"
	"github.com/Vivtek/Lingua-Tok/internal/token"
)

// Markdown supplies a Markdown document as plain text interleaved with
// Format markers for inline and block structure. The source is parsed
// once at construction; markdown syntax is normalized into HTML-like
// markers ("<em>", "</code>", ...), so reconstruction yields marked-up
// text rather than the original source bytes.
type Markdown struct {
	items []any
	pos   int
}

// NewMarkdown parses source and creates a Markdown document.
func NewMarkdown(source []byte) *Markdown {
	md := goldmark.New()
	root := md.Parser().Parse(gtext.NewReader(source))

	d := &Markdown{}
	// Walk never fails: the visitor below returns no errors.
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		d.visit(n, entering, source)
		return ast.WalkContinue, nil
	})
	return d
}

func (d *Markdown) visit(n ast.Node, entering bool, source []byte) {
	switch n.Kind() {
	case ast.KindText:
		if !entering {
			return
		}
		t := n.(*ast.Text)
		d.text(string(t.Segment.Value(source)))
		if t.SoftLineBreak() || t.HardLineBreak() {
			d.text("\n")
		}
	case ast.KindEmphasis:
		if n.(*ast.Emphasis).Level >= 2 {
			d.marker("strong", entering)
		} else {
			d.marker("em", entering)
		}
	case ast.KindCodeSpan:
		d.marker("code", entering)
	case ast.KindHeading:
		d.marker(fmt.Sprintf("h%d", n.(*ast.Heading).Level), entering)
		if !entering {
			d.text("\n")
		}
	case ast.KindLink:
		if entering {
			d.format(fmt.Sprintf("<a href=%q>", n.(*ast.Link).Destination))
		} else {
			d.format("</a>")
		}
	case ast.KindAutoLink:
		if entering {
			d.text(string(n.(*ast.AutoLink).URL(source)))
		}
	case ast.KindParagraph, ast.KindListItem, ast.KindBlockquote:
		if !entering {
			d.text("\n")
		}
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if !entering {
			return
		}
		d.marker("pre", true)
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			d.text(string(seg.Value(source)))
		}
		d.marker("pre", false)
	}
}

func (d *Markdown) text(s string) {
	if s != "" {
		d.items = append(d.items, s)
	}
}

func (d *Markdown) marker(name string, entering bool) {
	if entering {
		d.format("<" + name + ">")
	} else {
		d.format("</" + name + ">")
	}
}

func (d *Markdown) format(s string) {
	d.items = append(d.items, token.New(token.Format, s))
}

// Tokens returns a reader yielding one pre-walked item per call.
func (d *Markdown) Tokens() tok.Reader {
	return func() ([]any, bool) {
		if d.pos >= len(d.items) {
			return nil, false
		}
		item := d.items[d.pos]
		d.pos++
		return []any{item}, true
	}
}
