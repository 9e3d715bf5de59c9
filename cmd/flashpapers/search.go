package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashpapers/internal/cli"
	"github.com/at-ishikawa/flashpapers/internal/search"
)

func newSearchCommand() *cobra.Command {
	var (
		categories []string
		keywords   []string
		listTags   bool
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search papers by text, category or keyword",
		Args:  cobra.MaximumNArgs(1),
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

			if listTags {
				fmt.Printf("Categories: %s\n", strings.Join(search.AllCategories(papers), ", "))
				fmt.Printf("Keywords:   %s\n", strings.Join(search.AllKeywords(papers), ", "))
				return nil
			}

			filters := search.Filters{
				Categories: categories,
				Keywords:   keywords,
			}
			if len(args) > 0 {
				filters.Query = args[0]
			}
			return cli.RunSearch(paperStore, os.Stdout, filters)
		},
	}

	cmd.Flags().StringSliceVar(&categories, "category", nil, "Filter by category, repeatable")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Filter by keyword, repeatable")
	cmd.Flags().BoolVar(&listTags, "tags", false, "List the categories and keywords in use")
	return cmd
}
