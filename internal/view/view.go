// Package view provides output formatting for mack commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/slack-go/slack"
)

// Format represents an output format.
type Format string

const (
	FormatJSON    Format = "json"
	FormatOutline Format = "outline"
)

// ValidateFormat returns an error if the format is not supported.
func ValidateFormat(format string) error {
	switch Format(format) {
	case FormatJSON, FormatOutline:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (expected json or outline)", format)
	}
}

// Renderer renders converted blocks in a specific format.
type Renderer struct {
	format  Format
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format:  format,
		writer:  os.Stdout,
		noColor: noColor,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// payload is the Slack message body the JSON format produces.
type payload struct {
	Blocks []slack.Block `json:"blocks"`
}

// RenderBlocks writes the block sequence in the renderer's format. The JSON
// format is a ready-to-post Slack message payload; the outline format is a
// human-readable per-block summary.
func (r *Renderer) RenderBlocks(blocks []slack.Block) error {
	if r.format == FormatJSON {
		return r.renderBlocksJSON(blocks)
	}
	return r.renderBlocksOutline(blocks)
}

func (r *Renderer) renderBlocksJSON(blocks []slack.Block) error {
	if blocks == nil {
		blocks = []slack.Block{}
	}
	data, err := json.MarshalIndent(payload{Blocks: blocks}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal blocks: %w", err)
	}
	fmt.Fprintln(r.writer, string(data))
	return nil
}

func (r *Renderer) renderBlocksOutline(blocks []slack.Block) error {
	label := color.New(color.FgCyan, color.Bold)
	for _, b := range blocks {
		switch block := b.(type) {
		case *slack.HeaderBlock:
			label.Fprint(r.writer, "header   ")
			fmt.Fprintln(r.writer, block.Text.Text)
		case *slack.SectionBlock:
			label.Fprint(r.writer, "section  ")
			fmt.Fprintln(r.writer, block.Text.Text)
		case *slack.DividerBlock:
			label.Fprintln(r.writer, "divider")
		case *slack.ImageBlock:
			label.Fprint(r.writer, "image    ")
			fmt.Fprintf(r.writer, "%s (alt: %s)\n", block.ImageURL, block.AltText)
		default:
			label.Fprint(r.writer, "block    ")
			fmt.Fprintf(r.writer, "%s\n", b.BlockType())
		}
	}
	return nil
}

// RenderKeyValue renders a labeled value pair.
func (r *Renderer) RenderKeyValue(key, value string) {
	keyColor := color.New(color.FgCyan, color.Bold)
	keyColor.Fprintf(r.writer, "%s: ", key)
	fmt.Fprintln(r.writer, value)
}
