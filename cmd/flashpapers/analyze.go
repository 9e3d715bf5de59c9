package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashpapers/internal/cli"
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze reading progress and review statistics",
	}
	cmd.AddCommand(newAnalyzeReportCommand())
	return cmd
}

func newAnalyzeReportCommand() *cobra.Command {
	var upcomingDays int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show collection and review statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if upcomingDays < 0 {
				return fmt.Errorf("--days must not be negative")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			return cli.RunAnalyticsReport(paperStore, os.Stdout, upcomingDays)
		},
	}

	cmd.Flags().IntVar(&upcomingDays, "days", 7, "Days of upcoming reviews to include")
	return cmd
}
