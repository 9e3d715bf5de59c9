package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashpapers/internal/pdf"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export and import the collection",
	}
	cmd.AddCommand(
		newExportYamlCommand(),
		newImportYamlCommand(),
		newExportPDFCommand(),
	)
	return cmd
}

func newExportYamlCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "yaml <out-file>",
		Short: "Export the collection to a YAML file",
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

			if err := paperStore.ExportYAML(args[0]); err != nil {
				return fmt.Errorf("paperStore.ExportYAML(%s) > %w", args[0], err)
			}
			fmt.Printf("Exported collection to %s\n", args[0])
			return nil
		},
	}
}

func newImportYamlCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <in-file>",
		Short: "Merge papers from a YAML file into the collection",
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

			count, err := paperStore.ImportYAML(args[0])
			if err != nil {
				return fmt.Errorf("paperStore.ImportYAML(%s) > %w", args[0], err)
			}
			fmt.Printf("Imported %d papers from %s\n", count, args[0])
			return nil
		},
	}
}

func newExportPDFCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pdf <id> <out-file>",
		Short: "Render a paper summary as a PDF",
		Args:  cobra.ExactArgs(2),
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
			if err := pdf.ExportSummary(p, args[1]); err != nil {
				return fmt.Errorf("pdf.ExportSummary() > %w", err)
			}
			fmt.Printf("Exported summary of %s to %s\n", p.PaperTitle, args[1])
			return nil
		},
	}
}
