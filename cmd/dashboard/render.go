package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alias1177/SeasonOutlook/internal/api/predictions"
	"github.com/Alias1177/SeasonOutlook/internal/dashboard"
	"github.com/Alias1177/SeasonOutlook/internal/display"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Load the dashboard once and print it as text",
	RunE: func(cmd *cobra.Command, args []string) error {
		pipeline, err := loadOnce(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dashboard.Summary(pipeline.Surface().Snapshot()))
		fmt.Fprintf(cmd.OutOrStdout(), "\ndata: %s\n", pipeline.Snapshot().Source)
		return nil
	},
}

// loadOnce runs a single page load with bars applied inline.
func loadOnce(cmd *cobra.Command) (*dashboard.Pipeline, error) {
	opts, err := pipelineOptions()
	if err != nil {
		return nil, err
	}
	opts.BarDelay = 0

	pipeline := dashboard.NewPipeline(
		predictions.NewClient(cfg),
		display.NewSurface(display.FullLayout()...),
		opts,
	)
	pipeline.Initialize(cmd.Context())
	return pipeline, nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
