// quote.go converts blockquotes and code blocks. Both flatten to a single
// Section: quotes as "> "-prefixed lines, code as a fenced monospace block.
package mack

import (
	"strings"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark/ast"
)

func (c *converter) convertBlockquote(n *ast.Blockquote) []slack.Block {
	text := c.blockquoteText(n)
	if text == "" {
		return nil
	}
	return []slack.Block{newSection(text)}
}

// blockquoteText renders a blockquote's children and prefixes every
// resulting line with the quote marker.
func (c *converter) blockquoteText(n *ast.Blockquote) string {
	var parts []string
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		var text string
		switch ch := child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			text = c.renderPhrasingNoImages(ch, dialectMrkdwn)
		case *ast.Blockquote:
			text = c.blockquoteText(ch)
		case *ast.List:
			text = c.renderListText(ch, c.opts.List, 0)
		case *ast.FencedCodeBlock:
			text = fenceText(c.codeText(ch))
		case *ast.CodeBlock:
			text = fenceText(c.codeText(ch))
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return ""
	}

	lines := strings.Split(strings.Join(parts, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

func (c *converter) convertCode(n ast.Node) []slack.Block {
	return []slack.Block{newSection(fenceText(c.codeText(n)))}
}

// codeText returns a code block's content with the trailing newline trimmed.
func (c *converter) codeText(n ast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(c.source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func fenceText(code string) string {
	return "```\n" + code + "\n```"
}
