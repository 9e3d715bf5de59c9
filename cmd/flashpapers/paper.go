package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/flashpapers/internal/arxiv"
	"github.com/at-ishikawa/flashpapers/internal/cli"
	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/pdf"
	"github.com/at-ishikawa/flashpapers/internal/search"
)

type SortFlag string

// Set implements pflag.Value.
func (s *SortFlag) Set(v string) error {
	switch v {
	case string(SortDescending):
		*s = SortDescending
	case string(SortAscending):
		*s = SortAscending
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, SortDescending, SortAscending)
	}
	return nil
}

// String implements pflag.Value.
func (s *SortFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *SortFlag) Type() string {
	return "SortFlag"
}

var (
	_ pflag.Value = (*SortFlag)(nil)
)

const (
	SortDescending SortFlag = "desc"
	SortAscending  SortFlag = "asc"
)

func newPaperCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paper",
		Short: "Manage paper summaries",
	}
	cmd.AddCommand(
		newPaperAddCommand(),
		newPaperListCommand(),
		newPaperShowCommand(),
		newPaperDeleteCommand(),
	)
	return cmd
}

func newPaperAddCommand() *cobra.Command {
	var (
		title      string
		authors    string
		arxivID    string
		pdfPath    string
		link       string
		notes      string
		keywords   []string
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a paper, from flags or imported from arXiv",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			var p paper.Paper
			if arxivID != "" {
				client := arxiv.NewClient(
					cfg.Arxiv.BaseURL,
					time.Duration(cfg.Arxiv.TimeoutSeconds)*time.Second,
					uint(cfg.Arxiv.RetryCount),
				)
				p, err = client.Fetch(cmd.Context(), arxivID, cfg.SRS.Parameters(), time.Now())
				if err != nil {
					return fmt.Errorf("client.Fetch(%s) > %w", arxivID, err)
				}
				if title != "" {
					p.PaperTitle = title
				}
				if authors != "" {
					p.Authors = authors
				}
			} else {
				if title == "" || authors == "" {
					return fmt.Errorf("--title and --authors are required unless --arxiv is given")
				}
				p = paper.New(title, authors, cfg.SRS.Parameters(), time.Now())
			}

			p.Link = firstNonEmpty(link, p.Link)
			p.Notes = firstNonEmpty(notes, p.Notes)
			p.Keywords = keywords
			p.Category = categories

			if pdfPath != "" {
				attachments := pdf.NewAttachments(cfg.Data.PDFDirectory)
				storedPath, err := attachments.Save(p, pdfPath)
				if err != nil {
					return fmt.Errorf("attachments.Save() > %w", err)
				}
				p.PDFPath = storedPath
			}

			if err := paperStore.Add(p); err != nil {
				return fmt.Errorf("paperStore.Add() > %w", err)
			}
			fmt.Printf("Added paper %s (%s)\n", p.PaperTitle, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Paper title")
	cmd.Flags().StringVar(&authors, "authors", "", "Paper authors")
	cmd.Flags().StringVar(&arxivID, "arxiv", "", "arXiv identifier to import metadata from")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "PDF file to attach")
	cmd.Flags().StringVar(&link, "link", "", "Link to the paper")
	cmd.Flags().StringVar(&notes, "notes", "", "Free form notes")
	cmd.Flags().StringSliceVar(&keywords, "keyword", nil, "Keywords, repeatable")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Categories, repeatable")

	return cmd
}

func newPaperListCommand() *cobra.Command {
	var recentLimit int
	sortFlag := SortDescending

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List papers in the collection",
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
			if recentLimit > 0 {
				papers = search.Recent(papers, recentLimit)
			}
			sort.SliceStable(papers, func(i, j int) bool {
				if sortFlag == SortAscending {
					return papers[i].AddedDate.Before(papers[j].AddedDate)
				}
				return papers[j].AddedDate.Before(papers[i].AddedDate)
			})
			cli.PrintPapers(os.Stdout, papers, time.Now())
			return nil
		},
	}

	cmd.Flags().IntVar(&recentLimit, "recent", 0, "Show only the N most recently added papers")
	cmd.Flags().Var(&sortFlag, "sort", "Sort order by added date. Options: asc, desc")
	return cmd
}

func newPaperShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single paper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			p, err := paperStore.FindByID(args[0])
			if err != nil {
				return fmt.Errorf("paperStore.FindByID(%s) > %w", args[0], err)
			}
			cli.PrintPaper(os.Stdout, p)
			return nil
		},
	}
}

func newPaperDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a paper and its PDF attachment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			if err := paperStore.Delete(args[0]); err != nil {
				return fmt.Errorf("paperStore.Delete(%s) > %w", args[0], err)
			}

			attachments := pdf.NewAttachments(cfg.Data.PDFDirectory)
			if err := attachments.Delete(args[0]); err != nil {
				return fmt.Errorf("attachments.Delete(%s) > %w", args[0], err)
			}
			fmt.Printf("Deleted paper %s\n", args[0])
			return nil
		},
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
