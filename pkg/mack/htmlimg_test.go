package mack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractImages(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		expected []htmlImage
	}{
		{
			name:     "single img",
			fragment: `<img src="http://a/1.png" alt="one">`,
			expected: []htmlImage{{src: "http://a/1.png", alt: "one"}},
		},
		{
			name:     "multiple sibling imgs",
			fragment: `<img src="http://a/1.png"><img src="http://a/2.png" alt="two">`,
			expected: []htmlImage{
				{src: "http://a/1.png"},
				{src: "http://a/2.png", alt: "two"},
			},
		},
		{
			name:     "img nested in other markup",
			fragment: `<p>text <img src="http://a/1.png" alt="one"> more</p>`,
			expected: []htmlImage{{src: "http://a/1.png", alt: "one"}},
		},
		{
			name:     "img without src skipped",
			fragment: `<img alt="no source">`,
			expected: nil,
		},
		{
			name:     "no img at all",
			fragment: `<div><span>nothing here</span></div>`,
			expected: nil,
		},
		{
			name:     "unclosed markup still parses",
			fragment: `<div><img src="http://a/1.png"`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractImages(tt.fragment))
		})
	}
}

func TestConvertHTMLBlockSelfClosing(t *testing.T) {
	blocks, err := Convert([]byte(`<img src="http://a/p.png" alt="pic"/>`), Options{})
	require.NoError(t, err)
	require.Len(t, blocks, 1)
}
