package mack

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendSectionText(t *testing.T) {
	t.Run("opens a section on an empty accumulator", func(t *testing.T) {
		blocks := appendSectionText(nil, "hello")
		require.Len(t, blocks, 1)
		assert.Equal(t, "hello", sectionText(t, blocks[0]))
	})

	t.Run("merges into a trailing section", func(t *testing.T) {
		blocks := appendSectionText(nil, "hello")
		blocks = appendSectionText(blocks, " world")
		require.Len(t, blocks, 1)
		assert.Equal(t, "hello world", sectionText(t, blocks[0]))
	})

	t.Run("opens a new section after a non-section block", func(t *testing.T) {
		blocks := []slack.Block{newSection("first"), newDivider()}
		blocks = appendSectionText(blocks, "second")
		require.Len(t, blocks, 3)
		assert.Equal(t, "first", sectionText(t, blocks[0]))
		assert.Equal(t, "second", sectionText(t, blocks[2]))
	})

	t.Run("empty text is a no-op", func(t *testing.T) {
		blocks := appendSectionText(nil, "")
		assert.Empty(t, blocks)
	})
}

func TestBlockConstructors(t *testing.T) {
	h := newHeader("title")
	assert.Equal(t, slack.PlainTextType, h.Text.Type)
	assert.Equal(t, "title", h.Text.Text)

	s := newSection("*body*")
	assert.Equal(t, slack.MarkdownType, s.Text.Type)
	assert.Equal(t, "*body*", s.Text.Text)

	img := newImage("http://a/x.png", "alt text")
	assert.Equal(t, "http://a/x.png", img.ImageURL)
	assert.Equal(t, "alt text", img.AltText)
}
