// Package mack converts Markdown documents into Slack Block Kit layout blocks.
package mack

import (
	"strings"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mdParser is a pre-configured goldmark instance with GFM table and
// strikethrough extensions.
var mdParser = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
	),
)

// Convert parses markdown content and converts it to an ordered sequence of
// Slack Block Kit blocks. The returned blocks marshal directly to the Slack
// wire schema; callers are responsible for enforcing platform size limits.
//
// A malformed subtree never aborts the conversion: unknown node kinds
// contribute zero blocks.
func Convert(source []byte, opts Options) ([]slack.Block, error) {
	opts = opts.withDefaults()
	if len(source) == 0 {
		return nil, nil
	}

	reader := text.NewReader(source)
	doc := mdParser.Parser().Parse(reader)

	c := &converter{source: source, opts: opts}
	return c.convertDocument(doc), nil
}

// converter holds state during AST conversion.
type converter struct {
	source []byte
	opts   Options
}

// convertDocument walks the top-level children of the document with an
// explicit cursor so that the sources-marker rule can look ahead past the
// marker paragraph to the list that follows it.
func (c *converter) convertDocument(doc ast.Node) []slack.Block {
	var nodes []ast.Node
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		nodes = append(nodes, child)
	}

	var blocks []slack.Block
	for i := 0; i < len(nodes); i++ {
		if p, ok := nodes[i].(*ast.Paragraph); ok && c.isSourcesMarker(p) {
			blocks = append(blocks, newDivider(), newHeader(c.opts.SourcesLabel))

			// Peek past an optional blank node to the sources list. When a
			// list follows, it is consumed together with the marker so the
			// default dispatch never sees it again.
			j := i + 1
			if j < len(nodes) && c.isBlank(nodes[j]) {
				j++
			}
			if j < len(nodes) {
				if list, ok := nodes[j].(*ast.List); ok {
					blocks = append(blocks, c.convertList(list)...)
					i = j
				}
			}
			continue
		}

		blocks = append(blocks, c.convertNode(nodes[i])...)
	}
	return blocks
}

// convertNode dispatches a single block-level AST node to its converter.
// Unknown node kinds contribute zero blocks.
func (c *converter) convertNode(n ast.Node) []slack.Block {
	switch node := n.(type) {
	case *ast.Heading:
		return c.convertHeading(node)
	case *ast.Paragraph:
		return c.convertParagraph(node)
	case *ast.TextBlock:
		return c.convertTextBlock(node)
	case *ast.List:
		return c.convertList(node)
	case *ast.FencedCodeBlock:
		return c.convertCode(node)
	case *ast.CodeBlock:
		return c.convertCode(node)
	case *ast.Blockquote:
		return c.convertBlockquote(node)
	case *ast.ThematicBreak:
		if c.opts.SkipThematicBreaks {
			return nil
		}
		return []slack.Block{newDivider()}
	case *extast.Table:
		return c.convertTable(node)
	case *ast.HTMLBlock:
		return c.convertHTMLBlock(node)
	default:
		return nil
	}
}

// isSourcesMarker reports whether the paragraph's trimmed raw source equals
// the configured sources delimiter.
func (c *converter) isSourcesMarker(n *ast.Paragraph) bool {
	return strings.TrimSpace(c.blockSource(n)) == c.opts.SourcesMarker
}

// isBlank reports whether a node carries only whitespace.
func (c *converter) isBlank(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return strings.TrimSpace(c.blockSource(n)) == ""
	}
	return false
}

// blockSource returns the raw source text covered by a block node's lines.
func (c *converter) blockSource(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(c.source))
	}
	return sb.String()
}
