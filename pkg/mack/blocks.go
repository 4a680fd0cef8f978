// blocks.go provides thin constructors over slack-go block objects and the
// section merge fold shared by the phrasing-accumulation paths.
package mack

import "github.com/slack-go/slack"

func newHeader(text string) *slack.HeaderBlock {
	return slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, text, false, false))
}

func newSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func newDivider() *slack.DividerBlock {
	return slack.NewDividerBlock()
}

func newImage(url, alt string) *slack.ImageBlock {
	return slack.NewImageBlock(url, alt, "", nil)
}

// appendSectionText appends inline-derived text to the block accumulator.
// When the last block is a Section its text is extended in place, so runs of
// adjacent inline siblings stay in one block instead of fragmenting.
func appendSectionText(blocks []slack.Block, text string) []slack.Block {
	if text == "" {
		return blocks
	}
	if len(blocks) > 0 {
		if sec, ok := blocks[len(blocks)-1].(*slack.SectionBlock); ok && sec.Text != nil {
			sec.Text.Text += text
			return blocks
		}
	}
	return append(blocks, newSection(text))
}
