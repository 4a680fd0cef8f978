package mack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingDecoration(t *testing.T) {
	opts := Options{HeadingDecoration: "📌"}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ascii text decorated",
			input:    "# Release Notes",
			expected: "📌 Release Notes",
		},
		{
			name:     "hangul text decorated",
			input:    "# 릴리스 노트",
			expected: "📌 릴리스 노트",
		},
		{
			name:     "mixed hangul and ascii decorated",
			input:    "# 버전 2.0 출시",
			expected: "📌 버전 2.0 출시",
		},
		{
			name:     "other scripts left unadorned",
			input:    "# Résumé",
			expected: "Résumé",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := Convert([]byte(tt.input), opts)
			require.NoError(t, err)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.expected, headerText(t, blocks[0]))
		})
	}

	t.Run("disabled by default", func(t *testing.T) {
		blocks, err := Convert([]byte("# Release Notes"), Options{})
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		assert.Equal(t, "Release Notes", headerText(t, blocks[0]))
	})
}

func TestHeadingFormattingFlattened(t *testing.T) {
	// Level-1 headers are plain text: formatting markers disappear.
	blocks, err := Convert([]byte("# **Bold** and `code`"), Options{})
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Bold and code", headerText(t, blocks[0]))
}

func TestHeadingImagesExcluded(t *testing.T) {
	blocks, err := Convert([]byte("## Title ![alt](http://x.png) end"), Options{})
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Title  end", headerText(t, blocks[1]))
}

func TestStripBoldOutsideLinks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold outside links removed",
			input:    "a *b* c",
			expected: "a b c",
		},
		{
			name:     "bold inside link payload kept",
			input:    "see <http://x|*docs*> here",
			expected: "see <http://x|*docs*> here",
		},
		{
			name:     "mixed",
			input:    "*a* <http://x|*b*> *c*",
			expected: "a <http://x|*b*> c",
		},
		{
			name:     "no markers",
			input:    "plain",
			expected: "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripBoldOutsideLinks(tt.input))
		})
	}
}

func TestIsASCIIOrHangul(t *testing.T) {
	assert.True(t, isASCIIOrHangul("hello 123"))
	assert.True(t, isASCIIOrHangul("안녕하세요"))
	assert.True(t, isASCIIOrHangul("hello 안녕"))
	assert.False(t, isASCIIOrHangul("こんにちは"))
	assert.False(t, isASCIIOrHangul("Résumé"))
	assert.True(t, isASCIIOrHangul(""))
}
