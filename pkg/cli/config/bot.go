package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pairup/pkg/domain/interfaces"
	"github.com/secmon-lab/pairup/pkg/domain/types"
	"github.com/secmon-lab/pairup/pkg/service/teamsconn"
	"github.com/urfave/cli/v3"
)

// Bot holds CLI flags for the Bot Framework identity used for proactive
// messaging.
type Bot struct {
	appID       string
	appPassword string
	displayName string
	locale      string
}

// Flags returns CLI flags for bot configuration
func (b *Bot) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bot-app-id",
			Usage:       "Bot Framework application ID",
			Sources:     cli.EnvVars("PAIRUP_BOT_APP_ID"),
			Destination: &b.appID,
		},
		&cli.StringFlag{
			Name:        "bot-app-password",
			Usage:       "Bot Framework application password",
			Sources:     cli.EnvVars("PAIRUP_BOT_APP_PASSWORD"),
			Destination: &b.appPassword,
		},
		&cli.StringFlag{
			Name:        "bot-display-name",
			Usage:       "Display name shown in notification text",
			Value:       "Pairup",
			Sources:     cli.EnvVars("PAIRUP_BOT_DISPLAY_NAME"),
			Destination: &b.displayName,
		},
		&cli.StringFlag{
			Name:        "bot-locale",
			Usage:       "Locale for notification text and questions",
			Value:       "en",
			Sources:     cli.EnvVars("PAIRUP_BOT_LOCALE"),
			Destination: &b.locale,
		},
	}
}

// DisplayName returns the configured bot display name
func (b *Bot) DisplayName() string {
	return b.displayName
}

// Locale returns the configured default locale
func (b *Bot) Locale() types.Locale {
	return types.Locale(b.locale)
}

// IsConfigured reports whether bot credentials were provided
func (b *Bot) IsConfigured() bool {
	return b.appID != "" && b.appPassword != ""
}

// Configure builds the Bot Connector client
func (b *Bot) Configure() (interfaces.Conversation, error) {
	if !b.IsConfigured() {
		return nil, goerr.New("bot-app-id and bot-app-password are required")
	}

	conv, err := teamsconn.New(b.appID, b.appPassword)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize bot connector client")
	}
	return conv, nil
}
