package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashpapers/internal/store"
)

func newBackupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage collection backups",
	}
	cmd.AddCommand(
		newBackupCreateCommand(),
		newBackupRestoreCommand(),
		newBackupPackageCommand(),
		newBackupPruneCommand(),
	)
	return cmd
}

func newBackupCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a timestamped backup of the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			paperStore, err := openStore(cfg)
			if err != nil {
				return err
			}

			backupPath, err := paperStore.CreateBackup(cfg.Backup.Directory)
			if err != nil {
				return fmt.Errorf("paperStore.CreateBackup() > %w", err)
			}
			fmt.Printf("Created backup %s\n", backupPath)
			return nil
		},
	}
}

func newBackupRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-file>",
		Short: "Restore the collection from a backup file",
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

			if err := paperStore.RestoreFromBackup(args[0]); err != nil {
				return fmt.Errorf("paperStore.RestoreFromBackup(%s) > %w", args[0], err)
			}
			fmt.Printf("Restored collection from %s\n", args[0])
			return nil
		},
	}
}

func newBackupPackageCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Package every backup into a zip archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err := store.PackageBackups(cfg.Backup.Directory, outPath); err != nil {
				return fmt.Errorf("store.PackageBackups() > %w", err)
			}
			fmt.Printf("Packaged backups into %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "flashpapers_backups.zip", "Output zip file path")
	return cmd
}

func newBackupPruneCommand() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old backups, keeping the newest N",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if keep == 0 {
				keep = cfg.Backup.Keep
			}
			removed, err := store.PruneBackups(cfg.Backup.Directory, keep)
			if err != nil {
				return fmt.Errorf("store.PruneBackups() > %w", err)
			}
			fmt.Printf("Removed %d backups, kept the newest %d\n", removed, keep)
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", 0, "How many backups to keep, defaults to the configured value")
	return cmd
}
