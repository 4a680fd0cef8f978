package mack

import (
	"strings"
	"unicode"

	"github.com/slack-go/slack"
	"github.com/yuin/goldmark/ast"
)

// subheadingGlyph leads level-3+ headings, which render as indented bold
// Sections rather than Header blocks.
const subheadingGlyph = "▸ "

// convertHeading maps heading depth onto block structure: level 1 becomes a
// Header, level 2 a Divider followed by a Header (or bold Section, per
// options), and deeper levels an indented bold Section.
func (c *converter) convertHeading(n *ast.Heading) []slack.Block {
	switch {
	case n.Level == 1:
		text := c.renderPhrasingChildren(n, dialectPlain)
		if c.opts.HeadingDecoration != "" && isASCIIOrHangul(text) {
			text = c.opts.HeadingDecoration + " " + text
		}
		return []slack.Block{newHeader(text)}

	case n.Level == 2:
		text := c.renderPhrasingNoImages(n, dialectMrkdwn)
		if c.opts.H2Section {
			return []slack.Block{newDivider(), newSection("*" + text + "*")}
		}
		return []slack.Block{newDivider(), newHeader(text)}

	default:
		text := c.renderPhrasingNoImages(n, dialectMrkdwn)
		text = stripBoldOutsideLinks(text)
		return []slack.Block{newSection(subheadingGlyph + "*" + text + "*")}
	}
}

// stripBoldOutsideLinks removes bold markers that are not part of a
// <url|text> link payload, so the whole heading can be re-wrapped in a
// single bold span without nesting markers.
func stripBoldOutsideLinks(s string) string {
	var sb strings.Builder
	inLink := false
	for _, r := range s {
		switch {
		case r == '<':
			inLink = true
		case r == '>':
			inLink = false
		case r == '*' && !inLink:
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isASCIIOrHangul reports whether the text contains only ASCII and Hangul
// characters. Heading decoration is restricted to such text so documents in
// other scripts keep their headings unadorned.
func isASCIIOrHangul(s string) bool {
	for _, r := range s {
		if r <= unicode.MaxASCII {
			continue
		}
		if unicode.Is(unicode.Hangul, r) {
			continue
		}
		return false
	}
	return true
}
