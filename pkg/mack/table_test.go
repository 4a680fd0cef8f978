package mack

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertTable(t *testing.T) {
	t.Run("header separator and body rows", func(t *testing.T) {
		input := "| A | B |\n| --- | --- |\n| 1 | 2 |"
		blocks, err := Convert([]byte(input), Options{})
		require.NoError(t, err)
		require.Len(t, blocks, 1)

		text := sectionText(t, blocks[0])
		require.True(t, strings.HasPrefix(text, "```\n"))
		require.True(t, strings.HasSuffix(text, "\n```"))

		grid := strings.Split(strings.TrimSuffix(strings.TrimPrefix(text, "```\n"), "\n```"), "\n")
		require.Len(t, grid, 3)
		assert.Equal(t, "| A | B |", grid[0])
		assert.Equal(t, "| --- | --- |", grid[1])
		assert.Equal(t, "| 1 | 2 |", grid[2])
	})

	t.Run("separator matches header column count", func(t *testing.T) {
		input := "| A | B | C |\n| --- | --- | --- |\n| 1 | 2 | 3 |"
		blocks, err := Convert([]byte(input), Options{})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Contains(t, sectionText(t, blocks[0]), "| --- | --- | --- |")
	})

	t.Run("cell formatting rendered as mrkdwn", func(t *testing.T) {
		input := "| Name | Link |\n| --- | --- |\n| **bold** | [x](http://x) |"
		blocks, err := Convert([]byte(input), Options{})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		text := sectionText(t, blocks[0])
		assert.Contains(t, text, "| *bold* | <http://x|x> |")
	})

	t.Run("image cell contributes its url", func(t *testing.T) {
		input := "| Pic |\n| --- |\n| ![alt](http://a/p.png) |"
		blocks, err := Convert([]byte(input), Options{})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Contains(t, sectionText(t, blocks[0]), "| http://a/p.png |")
	})
}
