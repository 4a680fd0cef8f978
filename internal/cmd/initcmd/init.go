// Package initcmd provides the init command for mack.
package initcmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/miridih-ejkim/mack/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		webhook string
		channel string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize mack configuration",
		Long: `Initialize mack with your Slack delivery settings.

This command walks you through setting up an incoming webhook URL and/or a
bot token. The configuration is saved to ~/.config/mack/config.yml.

To create an incoming webhook:
  1. Go to https://api.slack.com/apps and open your app
  2. Enable "Incoming Webhooks" and add one to a channel
  3. Copy the webhook URL`,
		Example: `  # Interactive setup
  mack init

  # Pre-populate the webhook URL
  mack init --webhook https://hooks.slack.com/services/T/B/X`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(webhook, channel)
		},
	}

	cmd.Flags().StringVar(&webhook, "webhook", "", "Incoming webhook URL")
	cmd.Flags().StringVar(&channel, "channel", "", "Default channel ID for bot-token posting")

	return cmd
}

func runInit(prefillWebhook, prefillChannel string) error {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		WebhookURL:     prefillWebhook,
		DefaultChannel: prefillChannel,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Webhook URL").
				Description("Incoming webhook for posting (leave empty to use a bot token)").
				Placeholder("https://hooks.slack.com/services/T/B/X").
				Value(&cfg.WebhookURL),

			huh.NewInput().
				Title("Bot Token").
				Description("xoxb- token for Web API posting (optional with a webhook)").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.BotToken).
				Validate(func(s string) error {
					if s != "" && !strings.HasPrefix(s, "xoxb-") {
						return fmt.Errorf("bot tokens start with xoxb-")
					}
					return nil
				}),

			huh.NewInput().
				Title("Default Channel (optional)").
				Description("Channel ID used when posting with the bot token").
				Placeholder("C0123456789").
				Value(&cfg.DefaultChannel),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  mack convert README.md")
	fmt.Println("  mack post README.md")

	return nil
}
