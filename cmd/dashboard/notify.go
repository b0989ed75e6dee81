package main

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Alias1177/SeasonOutlook/internal/dashboard"
	"github.com/Alias1177/SeasonOutlook/internal/notify"
)

var notifyAllowMock bool

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send the current outlook to the configured Telegram chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.TelegramEnabled() {
			return eris.New("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set")
		}
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return err
		}

		pipeline, err := loadOnce(cmd)
		if err != nil {
			return err
		}
		if pipeline.Snapshot().Source == dashboard.SourceMock && !notifyAllowMock {
			return eris.New("predictions API unavailable; refusing to broadcast demo data")
		}

		if err := tg.Notify(cmd.Context(), dashboard.Summary(pipeline.Surface().Snapshot())); err != nil {
			return err
		}
		log.Info().Int64("chat_id", cfg.TelegramChatID).Msg("Outlook sent")
		return nil
	},
}

func init() {
	notifyCmd.Flags().BoolVar(&notifyAllowMock, "allow-mock", false, "send the demo dataset when the API is unavailable")
	rootCmd.AddCommand(notifyCmd)
}
