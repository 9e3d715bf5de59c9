// Package pdf manages PDF attachments and renders paper summaries to
// PDF files.
package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

var unsafeFileNameCharacters = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Attachments stores one PDF per paper under a single directory, named
// <paper id>_<sanitized title>.pdf.
type Attachments struct {
	directory string
}

func NewAttachments(directory string) *Attachments {
	return &Attachments{directory: directory}
}

// Save copies the source PDF into the attachment directory and returns
// the stored path. An existing attachment for the paper is replaced.
func (a *Attachments) Save(p paper.Paper, sourcePath string) (string, error) {
	if !strings.EqualFold(filepath.Ext(sourcePath), ".pdf") {
		return "", fmt.Errorf("input file must have .pdf extension: %s", sourcePath)
	}
	if err := os.MkdirAll(a.directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", a.directory, err)
	}

	if existing, err := a.FindByPaperID(p.ID); err == nil {
		if err := os.Remove(existing); err != nil {
			return "", fmt.Errorf("os.Remove(%s) > %w", existing, err)
		}
	}

	destPath := filepath.Join(a.directory, attachmentFileName(p))
	source, err := os.Open(sourcePath)
	if err != nil {
		return "", fmt.Errorf("os.Open(%s) > %w", sourcePath, err)
	}
	defer func() {
		_ = source.Close()
	}()

	dest, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", destPath, err)
	}
	defer func() {
		_ = dest.Close()
	}()

	if _, err := io.Copy(dest, source); err != nil {
		return "", fmt.Errorf("io.Copy() > %w", err)
	}
	return destPath, nil
}

// FindByPaperID returns the stored attachment path for the paper, or an
// error when none exists.
func (a *Attachments) FindByPaperID(paperID string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(a.directory, paperID+"_*.pdf"))
	if err != nil {
		return "", fmt.Errorf("filepath.Glob() > %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no PDF attachment for paper %s", paperID)
	}
	return matches[0], nil
}

// Delete removes the attachment for the paper. Missing attachments are
// not an error.
func (a *Attachments) Delete(paperID string) error {
	path, err := a.FindByPaperID(paperID)
	if err != nil {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("os.Remove(%s) > %w", path, err)
	}
	return nil
}

func attachmentFileName(p paper.Paper) string {
	title := unsafeFileNameCharacters.ReplaceAllString(p.PaperTitle, "_")
	title = strings.Trim(title, "_")
	const maxTitleLength = 60
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}
	return fmt.Sprintf("%s_%s.pdf", p.ID, title)
}
