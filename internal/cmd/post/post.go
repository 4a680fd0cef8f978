// Package post provides the post command for mack.
package post

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/miridih-ejkim/mack/internal/cmd/convert"
	"github.com/miridih-ejkim/mack/internal/config"
	"github.com/miridih-ejkim/mack/pkg/mack"
)

type postOptions struct {
	fromHTML bool
	webhook  string
	token    string
	channel  string
	text     string
}

// NewCmdPost creates the post command.
func NewCmdPost() *cobra.Command {
	opts := &postOptions{}

	cmd := &cobra.Command{
		Use:   "post [file]",
		Short: "Convert markdown and post it to Slack",
		Long: `Convert a markdown document to Block Kit blocks and post the result to
Slack, either through an incoming webhook or the Web API with a bot token.

Delivery settings come from the config file (run 'mack init'), MACK_*
environment variables, or flags. The message is sent once; there are no
retries.`,
		Example: `  # Post through the configured webhook
  mack post notes.md

  # Post to a channel with a bot token
  mack post notes.md --channel C0123456789

  # One-off webhook override
  mack post notes.md --webhook https://hooks.slack.com/services/T/B/X`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var file string
			if len(args) > 0 {
				file = args[0]
			}
			return runPost(file, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.fromHTML, "from-html", false, "Treat the input as HTML and convert it to markdown first")
	cmd.Flags().StringVar(&opts.webhook, "webhook", "", "Incoming webhook URL (overrides config)")
	cmd.Flags().StringVar(&opts.token, "token", "", "Bot token (overrides config)")
	cmd.Flags().StringVar(&opts.channel, "channel", "", "Channel ID to post to (overrides config)")
	cmd.Flags().StringVar(&opts.text, "text", "", "Fallback notification text for the message")

	return cmd
}

func runPost(file string, opts *postOptions) error {
	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.webhook != "" {
		cfg.WebhookURL = opts.webhook
	}
	if opts.token != "" {
		cfg.BotToken = opts.token
	}
	if opts.channel != "" {
		cfg.DefaultChannel = opts.channel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'mack init' to configure)", err)
	}

	source, err := convert.ReadInput(file, opts.fromHTML, os.Stdin)
	if err != nil {
		return err
	}

	blocks, err := mack.Convert(source, mack.Options{})
	if err != nil {
		return fmt.Errorf("failed to convert markdown: %w", err)
	}
	if len(blocks) == 0 {
		return errors.New("nothing to post: input produced no blocks")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := deliver(ctx, cfg, opts.text, blocks); err != nil {
		return fmt.Errorf("failed to post message: %w", err)
	}

	fmt.Printf("Posted %d blocks.\n", len(blocks))
	return nil
}

// deliver sends the blocks through the webhook when one is configured,
// otherwise through the Web API.
func deliver(ctx context.Context, cfg *config.Config, text string, blocks []slack.Block) error {
	if cfg.WebhookURL != "" {
		msg := &slack.WebhookMessage{
			Text:   text,
			Blocks: &slack.Blocks{BlockSet: blocks},
		}
		return slack.PostWebhookContext(ctx, cfg.WebhookURL, msg)
	}

	if cfg.DefaultChannel == "" {
		return errors.New("a channel is required when posting with a bot token")
	}

	client := slack.New(cfg.BotToken)
	msgOpts := []slack.MsgOption{slack.MsgOptionBlocks(blocks...)}
	if text != "" {
		msgOpts = append(msgOpts, slack.MsgOptionText(text, false))
	}
	_, _, err := client.PostMessageContext(ctx, cfg.DefaultChannel, msgOpts...)
	return err
}
