package prompts

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownOutline extracts heading and list-item text from a Markdown
// document via an AST walk, used to give the TypeMarkdown template
// structural hints instead of asking the LLM to re-derive document
// structure from raw text (DOMAIN STACK: github.com/yuin/goldmark).
func MarkdownOutline(content string) []string {
	md := goldmark.New()
	source := []byte(content)
	root := md.Parser().Parse(text.NewReader(source))

	var outline []string
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading, ast.KindListItem:
			var buf bytes.Buffer
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if t, ok := c.(*ast.Text); ok {
					buf.Write(t.Segment.Value(source))
					continue
				}
				// A list item's text sits one level down, inside its
				// text block (tight list) or paragraph (loose list).
				if n.Kind() == ast.KindListItem && (c.Kind() == ast.KindTextBlock || c.Kind() == ast.KindParagraph) {
					for g := c.FirstChild(); g != nil; g = g.NextSibling() {
						if t, ok := g.(*ast.Text); ok {
							buf.Write(t.Segment.Value(source))
						}
					}
				}
			}
			if buf.Len() > 0 {
				outline = append(outline, buf.String())
			}
		}
		return ast.WalkContinue, nil
	})

	return outline
}
