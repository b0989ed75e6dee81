package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Alias1177/SeasonOutlook/internal/api/predictions"
	"github.com/Alias1177/SeasonOutlook/internal/dashboard"
	"github.com/Alias1177/SeasonOutlook/internal/display"
	"github.com/Alias1177/SeasonOutlook/internal/notify"
	"github.com/Alias1177/SeasonOutlook/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		opts, err := pipelineOptions()
		if err != nil {
			return err
		}
		if cfg.TelegramEnabled() {
			tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
			if err != nil {
				return err
			}
			opts.Notifier = tg
		}

		pipeline := dashboard.NewPipeline(
			predictions.NewClient(cfg),
			display.NewSurface(display.FullLayout()...),
			opts,
		)

		srv := server.New(pipeline, server.Options{
			CORSOrigins:     cfg.CORSOrigins,
			RefreshSchedule: cfg.RefreshSchedule,
		})
		if err := srv.Start(); err != nil {
			return err
		}
		defer srv.Stop()

		httpSrv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			log.Info().Str("addr", cfg.ListenAddr).Str("api", cfg.APIURL).Msg("Dashboard listening")
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "serve")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info().Msg("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpSrv.Shutdown(shutdownCtx)
		})
		return g.Wait()
	},
}

func pipelineOptions() (dashboard.Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return dashboard.Options{}, err
	}
	return dashboard.Options{
		TeamID:       cfg.TeamID,
		HistoryLimit: cfg.HistoryLimit,
		LabelReset:   cfg.LabelResetDelay(),
		BarDelay:     cfg.BarDelay(),
		Location:     loc,
	}, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
