package store

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

const backupTimeFormat = "20060102_150405"

// CreateBackup copies the storage file into the backup directory with a
// timestamped name and returns the backup path.
func (s *Store) CreateBackup(backupDir string) (string, error) {
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", backupDir, err)
	}

	name := fmt.Sprintf("flashpapers_backup_%s.json", time.Now().Format(backupTimeFormat))
	backupPath := filepath.Join(backupDir, name)
	if err := copyFile(s.path, backupPath); err != nil {
		return "", fmt.Errorf("copyFile(%s) > %w", backupPath, err)
	}
	return backupPath, nil
}

// RestoreFromBackup replaces the storage file with the given backup.
// The backup must parse as a paper collection; the current state is
// backed up into the same directory before it is overwritten.
func (s *Store) RestoreFromBackup(backupPath string) error {
	if _, err := readJSONFile[[]paper.Paper](backupPath); err != nil {
		return fmt.Errorf("invalid backup file > %w", err)
	}

	if _, err := s.CreateBackup(filepath.Dir(backupPath)); err != nil {
		return fmt.Errorf("s.CreateBackup() > %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := copyFile(backupPath, s.path); err != nil {
		return fmt.Errorf("copyFile(%s) > %w", s.path, err)
	}
	s.invalidateLocked()
	return nil
}

// ListBackups returns backup file paths in the directory, newest first.
func ListBackups(backupDir string) ([]string, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", backupDir, err)
	}

	var backups []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "flashpapers_backup_") && strings.HasSuffix(name, ".json") {
			backups = append(backups, filepath.Join(backupDir, name))
		}
	}
	// Timestamped names sort chronologically.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// PruneBackups keeps the newest keep backups and removes the rest.
// It returns the number of removed files.
func PruneBackups(backupDir string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	backups, err := ListBackups(backupDir)
	if err != nil {
		return 0, err
	}
	if len(backups) <= keep {
		return 0, nil
	}

	removed := 0
	for _, path := range backups[keep:] {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("os.Remove(%s) > %w", path, err)
		}
		removed++
	}
	return removed, nil
}

// PackageBackups writes every backup in the directory into a single zip
// archive at outPath.
func PackageBackups(backupDir, outPath string) error {
	backups, err := ListBackups(backupDir)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", backupDir)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", outPath, err)
	}
	defer func() {
		_ = out.Close()
	}()

	zipWriter := zip.NewWriter(out)
	for _, backupPath := range backups {
		if err := addFileToZip(zipWriter, backupPath); err != nil {
			_ = zipWriter.Close()
			return fmt.Errorf("addFileToZip(%s) > %w", backupPath, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("zipWriter.Close() > %w", err)
	}
	return nil
}

func addFileToZip(zipWriter *zip.Writer, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer, err := zipWriter.Create(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("zipWriter.Create() > %w", err)
	}
	if _, err := io.Copy(writer, file); err != nil {
		return fmt.Errorf("io.Copy() > %w", err)
	}
	return nil
}
