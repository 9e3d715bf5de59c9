package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashpapers/internal/cli"
	"github.com/at-ishikawa/flashpapers/internal/review"
)

func newReviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review due papers",
	}
	cmd.AddCommand(
		newReviewDueCommand(),
		newReviewStartCommand(),
	)
	return cmd
}

func newReviewDueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "List papers that are due for review",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			papers, err := paperStore.LoadAll()
			if err != nil {
				return fmt.Errorf("paperStore.LoadAll() > %w", err)
			}

			now := time.Now()
			cli.PrintPapers(os.Stdout, review.Due(papers, now, 0), now)
			return nil
		},
	}
}

func newReviewStartCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start an interactive review session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			session, err := cli.NewReviewSession(paperStore, cfg.SRS.Parameters(), limit)
			if err != nil {
				return fmt.Errorf("cli.NewReviewSession() > %w", err)
			}
			return session.Run(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum papers per session, 0 for no limit")
	return cmd
}
