package server

import (
	"bytes"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// maxDescriptionLen bounds synthesized command descriptions.
const maxDescriptionLen = 120

// DescribeCommand synthesizes a one-line description from raw command
// markdown: the first heading's text when present, otherwise the first
// paragraph, truncated. The scanning core hands commands through unparsed,
// so this is strictly a host-side projection.
func DescribeCommand(content string) string {
	source := []byte(content)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var heading, paragraph string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			if heading == "" {
				heading = nodeText(n, source)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			if paragraph == "" {
				paragraph = nodeText(n, source)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	desc := heading
	if desc == "" {
		desc = paragraph
	}
	desc = strings.Join(strings.Fields(desc), " ")
	return runewidth.Truncate(desc, maxDescriptionLen, "...")
}

// nodeText collects the plain text of a node's direct text children.
func nodeText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
