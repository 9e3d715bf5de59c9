package store

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/srs"
)

func writeBackupFixture(t *testing.T, dir, timestamp, contents string) string {
	t.Helper()

	path := filepath.Join(dir, fmt.Sprintf("flashpapers_backup_%s.json", timestamp))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestStore_CreateBackup(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(paper.New("Backed up", "A", srs.DefaultParameters, time.Now())))

	backupDir := t.TempDir()
	backupPath, err := s.CreateBackup(backupDir)
	require.NoError(t, err)

	papers, err := readJSONFile[[]paper.Paper](backupPath)
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, "Backed up", papers[0].PaperTitle)
}

func TestStore_RestoreFromBackup(t *testing.T) {
	t.Run("replaces the collection and backs up the current state", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Add(paper.New("Current", "A", srs.DefaultParameters, time.Now())))

		backupDir := t.TempDir()
		backupPath := writeBackupFixture(t, backupDir, "20260101_000000", "[]")

		require.NoError(t, s.RestoreFromBackup(backupPath))

		papers, err := s.LoadAll()
		require.NoError(t, err)
		assert.Empty(t, papers)

		backups, err := ListBackups(backupDir)
		require.NoError(t, err)
		assert.Len(t, backups, 2)
	})

	t.Run("rejects a backup that does not parse", func(t *testing.T) {
		s := newTestStore(t)
		backupPath := writeBackupFixture(t, t.TempDir(), "20260101_000000", "{not json")
		assert.Error(t, s.RestoreFromBackup(backupPath))
	})
}

func TestListBackups(t *testing.T) {
	backupDir := t.TempDir()
	writeBackupFixture(t, backupDir, "20260101_000000", "[]")
	writeBackupFixture(t, backupDir, "20260301_000000", "[]")
	writeBackupFixture(t, backupDir, "20260201_000000", "[]")
	require.NoError(t, os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("x"), 0644))

	backups, err := ListBackups(backupDir)
	require.NoError(t, err)
	require.Len(t, backups, 3)
	assert.Equal(t, "flashpapers_backup_20260301_000000.json", filepath.Base(backups[0]))
	assert.Equal(t, "flashpapers_backup_20260101_000000.json", filepath.Base(backups[2]))
}

func TestListBackups_MissingDirectory(t *testing.T) {
	backups, err := ListBackups(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestPruneBackups(t *testing.T) {
	backupDir := t.TempDir()
	writeBackupFixture(t, backupDir, "20260101_000000", "[]")
	writeBackupFixture(t, backupDir, "20260201_000000", "[]")
	writeBackupFixture(t, backupDir, "20260301_000000", "[]")

	removed, err := PruneBackups(backupDir, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	backups, err := ListBackups(backupDir)
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "flashpapers_backup_20260301_000000.json", filepath.Base(backups[0]))
}

func TestPackageBackups(t *testing.T) {
	backupDir := t.TempDir()
	writeBackupFixture(t, backupDir, "20260101_000000", "[]")
	writeBackupFixture(t, backupDir, "20260201_000000", "[]")

	outPath := filepath.Join(t.TempDir(), "backups.zip")
	require.NoError(t, PackageBackups(backupDir, outPath))

	reader, err := zip.OpenReader(outPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reader.Close())
	}()
	assert.Len(t, reader.File, 2)
}

func TestPackageBackups_EmptyDirectory(t *testing.T) {
	err := PackageBackups(t.TempDir(), filepath.Join(t.TempDir(), "backups.zip"))
	assert.Error(t, err)
}
