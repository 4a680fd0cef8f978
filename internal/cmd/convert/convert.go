// Package convert provides the convert command for mack.
package convert

import (
	"fmt"
	"io"
	"os"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/miridih-ejkim/mack/internal/view"
	"github.com/miridih-ejkim/mack/pkg/mack"
)

type convertOptions struct {
	fromHTML      bool
	decorateH1    string
	h2Section     bool
	skipRules     bool
	strict        bool
	sourcesMarker string
	sourcesLabel  string
	output        string
	noColor       bool
}

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert markdown to Slack Block Kit blocks",
		Long: `Convert a markdown document to Slack Block Kit layout blocks.

Reads from the given file, or from stdin when no file is supplied. The
default output is a ready-to-post Slack message payload ({"blocks": [...]}).`,
		Example: `  # Convert a file to a Slack message payload
  mack convert notes.md

  # Convert from stdin and inspect the block structure
  cat notes.md | mack convert --output outline

  # Convert an HTML document
  mack convert page.html --from-html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return runConvert(file, opts, os.Stdin)
		},
	}

	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "Treat the input as HTML and convert it to markdown first")
	cmd.Flags().StringVar(&opts.decorateH1, "decorate-h1", "", "Glyph prefixed to top-level headings (ASCII/Hangul text only)")
	cmd.Flags().BoolVar(&opts.h2Section, "h2-section", false, "Render level-2 headings as bold sections instead of headers")
	cmd.Flags().BoolVar(&opts.skipRules, "skip-rules", false, "Drop thematic breaks instead of emitting dividers")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Render paragraphs through the strict mrkdwn path")
	cmd.Flags().StringVar(&opts.sourcesMarker, "sources-marker", "", "Paragraph text that delimits the sources section")
	cmd.Flags().StringVar(&opts.sourcesLabel, "sources-label", "", "Header label for the sources section")

	return cmd
}

func runConvert(file string, opts *convertOptions, stdin io.Reader) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	source, err := ReadInput(file, opts.fromHTML, stdin)
	if err != nil {
		return err
	}

	blocks, err := mack.Convert(source, opts.mackOptions())
	if err != nil {
		return fmt.Errorf("failed to convert markdown: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	return renderer.RenderBlocks(blocks)
}

func (o *convertOptions) mackOptions() mack.Options {
	return mack.Options{
		HeadingDecoration:  o.decorateH1,
		H2Section:          o.h2Section,
		SkipThematicBreaks: o.skipRules,
		StrictParagraphs:   o.strict,
		SourcesMarker:      o.sourcesMarker,
		SourcesLabel:       o.sourcesLabel,
	}
}

// ReadInput reads markdown source from a file or stdin. With fromHTML set,
// the input is converted from HTML to markdown first. Shared with the post
// command.
func ReadInput(file string, fromHTML bool, stdin io.Reader) ([]byte, error) {
	var data []byte
	var err error
	if file != "" {
		data, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
	} else {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	if fromHTML {
		markdown, err := htmltomarkdown.ConvertString(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to convert html input: %w", err)
		}
		data = []byte(markdown)
	}

	return data, nil
}
