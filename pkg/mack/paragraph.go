package mack

import (
	"strings"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark/ast"
)

// convertParagraph renders a paragraph to at most one Section block, plus
// separate Image blocks for inline images on the strict path.
//
// The default path concatenates raw child text (links keep their raw label
// inside a <url|text> wrapper) and strips leftover emphasis markers, which
// tolerates malformed nesting. The strict path folds each child through the
// mrkdwn phrasing renderer and the section merge rule.
func (c *converter) convertParagraph(n *ast.Paragraph) []slack.Block {
	if c.opts.StrictParagraphs {
		return c.convertInlineStrict(n)
	}
	return c.convertInlineRaw(n)
}

// convertTextBlock handles the loose text blocks goldmark emits for tight
// list items that surface at the top level; they render like paragraphs.
func (c *converter) convertTextBlock(n *ast.TextBlock) []slack.Block {
	if c.opts.StrictParagraphs {
		return c.convertInlineStrict(n)
	}
	return c.convertInlineRaw(n)
}

func (c *converter) convertInlineRaw(n ast.Node) []slack.Block {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if link, ok := child.(*ast.Link); ok {
			sb.WriteString("<" + string(link.Destination) + "|" + c.rawText(link) + ">")
			continue
		}
		sb.WriteString(c.rawText(child))
	}

	text := strings.TrimSpace(stripEmphasisMarkers(sb.String()))
	if text == "" {
		return nil
	}
	return []slack.Block{newSection(text)}
}

func (c *converter) convertInlineStrict(n ast.Node) []slack.Block {
	var blocks []slack.Block
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if img, ok := child.(*ast.Image); ok {
			blocks = append(blocks, newImage(string(img.Destination), c.rawText(img)))
			continue
		}
		blocks = appendSectionText(blocks, c.renderPhrasing(child, dialectMrkdwn))
	}
	return blocks
}
