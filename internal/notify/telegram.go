// Package notify posts dashboard summaries to a Telegram chat.
package notify

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Telegram sends plain-text messages to a single chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// NewTelegram authorizes the bot against the public Bot API.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	return NewTelegramWithEndpoint(token, tgbotapi.APIEndpoint, chatID, &http.Client{Timeout: 30 * time.Second})
}

// NewTelegramWithEndpoint authorizes the bot against a custom endpoint
// (format "<base>/bot%s/%s").
func NewTelegramWithEndpoint(token, endpoint string, chatID int64, client tgbotapi.HTTPClient) (*Telegram, error) {
	if token == "" {
		return nil, eris.New("telegram: bot token is empty")
	}
	if chatID == 0 {
		return nil, eris.New("telegram: chat id is not set")
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, eris.Wrap(err, "telegram: initialize bot")
	}

	t := &Telegram{
		bot:    bot,
		chatID: chatID,
		logger: log.With().Str("component", "telegram").Logger(),
	}
	t.logger.Info().Str("username", bot.Self.UserName).Msg("Authorized on Telegram")
	return t, nil
}

// Notify sends text to the configured chat.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error().Err(err).Int64("chat_id", t.chatID).Msg("Failed to send message")
		return eris.Wrap(err, "telegram: send message")
	}

	t.logger.Debug().Int64("chat_id", t.chatID).Msg("Summary sent")
	return nil
}
