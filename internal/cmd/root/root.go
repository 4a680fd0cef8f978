// Package root provides the root command for the mack CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/miridih-ejkim/mack/internal/cmd/convert"
	"github.com/miridih-ejkim/mack/internal/cmd/initcmd"
	"github.com/miridih-ejkim/mack/internal/cmd/post"
	"github.com/miridih-ejkim/mack/internal/version"
)

// NewCmdRoot creates the root command for mack.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mack",
		Short: "Convert markdown documents to Slack Block Kit messages",
		Long: `mack converts Markdown documents into Slack Block Kit layout blocks
and optionally posts them as chat messages.

Get started by running: mack convert README.md`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("output", "o", "json", "output format: json, outline")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("mack version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(post.NewCmdPost())

	return cmd
}
