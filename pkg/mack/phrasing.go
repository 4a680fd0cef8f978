// phrasing.go renders inline (phrasing) nodes to text in one of two dialects:
// plain text for header-like blocks and Slack mrkdwn for section-like blocks.
package mack

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
)

type dialect int

const (
	dialectPlain dialect = iota
	dialectMrkdwn
)

// renderPhrasing converts a single phrasing node to text. The function is
// pure and total: unrecognized leaf variants yield the empty string, and
// unrecognized containers degrade to the concatenation of their children.
//
// Images are never inlined in the mrkdwn dialect; callers that accept image
// children must emit them as separate Image blocks.
func (c *converter) renderPhrasing(n ast.Node, d dialect) string {
	switch node := n.(type) {
	case *ast.Text:
		return c.renderTextLeaf(string(node.Segment.Value(c.source)), d) + lineBreakSuffix(node, d)
	case *ast.String:
		return c.renderTextLeaf(string(node.Value), d)
	case *ast.Emphasis:
		inner := c.renderPhrasingChildren(node, d)
		if d == dialectPlain {
			return inner
		}
		if node.Level == 2 {
			return "*" + inner + "*"
		}
		return "_" + inner + "_"
	case *extast.Strikethrough:
		inner := c.renderPhrasingChildren(node, d)
		if d == dialectPlain {
			return inner
		}
		return "~" + inner + "~"
	case *ast.CodeSpan:
		inner := c.renderPhrasingChildren(node, d)
		if d == dialectPlain {
			return inner
		}
		return "`" + inner + "`"
	case *ast.Link:
		inner := c.renderPhrasingChildren(node, d)
		href := string(node.Destination)
		if d == dialectPlain {
			return inner + " (" + href + ")"
		}
		return "<" + href + "|" + inner + ">"
	case *ast.AutoLink:
		url := string(node.URL(c.source))
		if d == dialectPlain {
			return url
		}
		return "<" + url + "|" + url + ">"
	case *ast.Image:
		if d == dialectPlain {
			if title := string(node.Title); title != "" {
				return title
			}
			return string(node.Destination)
		}
		return ""
	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			sb.Write(seg.Value(c.source))
		}
		return c.renderTextLeaf(sb.String(), d)
	default:
		return c.renderPhrasingChildren(n, d)
	}
}

// renderTextLeaf applies the dialect's leaf treatment: marker stripping for
// plain text, HTML entity escaping for mrkdwn.
func (c *converter) renderTextLeaf(text string, d dialect) string {
	if d == dialectPlain {
		return stripMarkers(text)
	}
	return escapeMrkdwn(text)
}

// renderPhrasingChildren concatenates the rendered children of a node.
func (c *converter) renderPhrasingChildren(n ast.Node, d dialect) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		sb.WriteString(c.renderPhrasing(child, d))
	}
	return sb.String()
}

// renderPhrasingNoImages concatenates the rendered children of a node,
// dropping image children entirely.
func (c *converter) renderPhrasingNoImages(n ast.Node, d dialect) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*ast.Image); ok {
			continue
		}
		sb.WriteString(c.renderPhrasing(child, d))
	}
	return sb.String()
}

// rawText concatenates the raw source text of all text leaves under a node.
// Line breaks between leaves are preserved as newlines.
func (c *converter) rawText(n ast.Node) string {
	var sb strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch node := n.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(c.source))
			if node.HardLineBreak() || node.SoftLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(node.Value)
		default:
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				walk(child)
			}
		}
	}
	walk(n)
	return sb.String()
}

// lineBreakSuffix renders the break that follows a text leaf: hard breaks
// become newlines in mrkdwn, everything else collapses to a single space.
func lineBreakSuffix(n *ast.Text, d dialect) string {
	switch {
	case n.HardLineBreak():
		if d == dialectMrkdwn {
			return "\n"
		}
		return " "
	case n.SoftLineBreak():
		return " "
	default:
		return ""
	}
}

// markerReplacer removes literal emphasis markers left behind by malformed
// nesting in plain-dialect output.
var markerReplacer = strings.NewReplacer("*", "", "_", "", "~", "", "`", "")

func stripMarkers(s string) string {
	return markerReplacer.Replace(s)
}

// emphasisReplacer removes emphasis and strikethrough markers from the
// permissive paragraph path. Backticks are left alone.
var emphasisReplacer = strings.NewReplacer("*", "", "_", "", "~", "")

func stripEmphasisMarkers(s string) string {
	return emphasisReplacer.Replace(s)
}

// escapeMrkdwn escapes the HTML-unsafe characters Slack requires in mrkdwn
// text. No other escaping is applied.
func escapeMrkdwn(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
