package mack

import (
	"strconv"
	"strings"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark/ast"
)

const (
	// bulletGlyph prefixes unordered list items.
	bulletGlyph = "•"
	// listIndent is one unit of leading indent per nesting level.
	listIndent = "  "
)

// convertList renders a list, including arbitrarily nested sublists, into a
// single flattened Section block of prefixed text lines.
func (c *converter) convertList(n *ast.List) []slack.Block {
	text := c.renderListText(n, c.opts.List, 0)
	if text == "" {
		return nil
	}
	return []slack.Block{newSection(text)}
}

// itemContent is one rendered content block of a list item. Nested lists
// carry their own deeper indent; every other multi-line block is re-indented
// to the item's content column.
type itemContent struct {
	text   string
	nested bool
}

// renderListText renders a list to newline-joined text lines. The ordinal
// counter for ordered lists is scoped to this invocation, so sibling and
// parent lists number independently.
func (c *converter) renderListText(list *ast.List, opts ListOptions, depth int) string {
	indent := strings.Repeat(listIndent, depth)

	var lines []string
	ordinal := 0
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var prefix string
		if list.IsOrdered() {
			ordinal++
			prefix = strconv.Itoa(ordinal) + ". "
		} else {
			prefix = bulletGlyph + " "
		}

		content := c.renderItemContent(item, opts, depth)
		if len(content) == 0 {
			lines = append(lines, indent+strings.TrimRight(prefix, " "))
			continue
		}

		// Continuation lines align under the first line's content column.
		contIndent := indent + strings.Repeat(" ", len([]rune(prefix)))
		first := true
		for _, block := range content {
			for _, line := range strings.Split(block.text, "\n") {
				switch {
				case first && block.nested:
					// A sublist cannot share the item's prefix line: emit
					// the bare prefix, then the sublist beneath it.
					lines = append(lines, indent+strings.TrimRight(prefix, " "), line)
					first = false
				case first:
					lines = append(lines, indent+prefix+line)
					first = false
				case block.nested:
					lines = append(lines, line)
				default:
					lines = append(lines, contIndent+line)
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

// renderItemContent renders the block-level children of a list item in
// order. Whitespace-only and unsupported children contribute nothing;
// images are not supported inside list item inline content and are dropped.
func (c *converter) renderItemContent(item ast.Node, opts ListOptions, depth int) []itemContent {
	var content []itemContent
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		switch ch := child.(type) {
		case *ast.TextBlock, *ast.Paragraph:
			text := c.renderPhrasingNoImages(ch, dialectMrkdwn)
			if strings.TrimSpace(text) == "" {
				continue
			}
			content = append(content, itemContent{text: text})
		case *ast.List:
			nested := c.renderListText(ch, opts, depth+1)
			if nested == "" {
				continue
			}
			content = append(content, itemContent{text: nested, nested: true})
		case *ast.FencedCodeBlock:
			content = append(content, itemContent{text: fenceText(c.codeText(ch))})
		case *ast.CodeBlock:
			content = append(content, itemContent{text: fenceText(c.codeText(ch))})
		case *ast.Blockquote:
			quoted := c.blockquoteText(ch)
			if quoted == "" {
				continue
			}
			content = append(content, itemContent{text: quoted})
		}
	}
	return content
}
