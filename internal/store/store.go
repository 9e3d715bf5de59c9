// Package store persists flashpaper records as a single JSON file with
// whole-file reads and writes. Writes are serialized with a mutex;
// concurrent processes fall back to last-writer-wins.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/at-ishikawa/flashpapers/internal/paper"
	"github.com/at-ishikawa/flashpapers/internal/srs"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("store: paper not found")

// Store manages the flashpapers.json file. Loaded records are cached in
// memory; the cache is invalidated when the file's mtime moves past the
// cache timestamp, so external edits are picked up on the next load.
type Store struct {
	path   string
	params srs.Parameters

	mu        sync.Mutex
	cache     []paper.Paper
	cachedAt  time.Time
	idIndex   map[string]int
	hasCached bool
}

// Open binds a store to the given file path, creating the file with an
// empty array and any parent directories when missing.
func Open(path string, params srs.Parameters) (*Store, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeJSONFile(path, []paper.Paper{}); err != nil {
			return nil, fmt.Errorf("writeJSONFile(%s) > %w", path, err)
		}
	}
	return &Store{path: path, params: params}, nil
}

// Path returns the location of the underlying JSON file.
func (s *Store) Path() string {
	return s.path
}

// InvalidateCache drops the in-memory cache so the next load re-reads
// the file.
func (s *Store) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
}

func (s *Store) invalidateLocked() {
	s.cache = nil
	s.idIndex = nil
	s.hasCached = false
}

// LoadAll returns every record, normalized through the scheduling
// engine's clamping so corrupted persisted values heal on load. The
// returned slice is a copy; callers may reorder or modify it without
// affecting the cache.
func (s *Store) LoadAll() ([]paper.Paper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	papers, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	out := make([]paper.Paper, len(papers))
	copy(out, papers)
	return out, nil
}

func (s *Store) loadLocked() ([]paper.Paper, error) {
	if s.hasCached {
		info, err := os.Stat(s.path)
		if err == nil && !info.ModTime().After(s.cachedAt) {
			return s.cache, nil
		}
		s.invalidateLocked()
	}

	papers, err := readJSONFile[[]paper.Paper](s.path)
	if err != nil {
		return nil, fmt.Errorf("readJSONFile(%s) > %w", s.path, err)
	}
	for i := range papers {
		papers[i] = papers[i].Normalize(s.params)
	}

	s.cache = papers
	s.cachedAt = time.Now()
	s.idIndex = buildIndex(papers)
	s.hasCached = true
	return papers, nil
}

// FindByID returns the record with the given identifier, or ErrNotFound.
func (s *Store) FindByID(id string) (paper.Paper, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.loadLocked(); err != nil {
		return paper.Paper{}, err
	}
	i, ok := s.idIndex[id]
	if !ok {
		return paper.Paper{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.cache[i], nil
}

// Add appends a new record and persists the whole collection.
func (s *Store) Add(p paper.Paper) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("paper.Validate() > %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	papers, err := s.loadLocked()
	if err != nil {
		return err
	}
	papers = append(papers, p)
	return s.saveLocked(papers)
}

// Update replaces the record with the same ID, or returns ErrNotFound.
func (s *Store) Update(p paper.Paper) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("paper.Validate() > %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	papers, err := s.loadLocked()
	if err != nil {
		return err
	}
	i, ok := s.idIndex[p.ID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, p.ID)
	}
	papers[i] = p
	return s.saveLocked(papers)
}

// Delete removes the record with the given ID, or returns ErrNotFound.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	papers, err := s.loadLocked()
	if err != nil {
		return err
	}
	i, ok := s.idIndex[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	papers = append(papers[:i], papers[i+1:]...)
	return s.saveLocked(papers)
}

// SaveAll replaces the entire collection.
func (s *Store) SaveAll(papers []paper.Paper) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(papers)
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	papers, err := s.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(papers), nil
}

func (s *Store) saveLocked(papers []paper.Paper) error {
	if err := writeJSONFile(s.path, papers); err != nil {
		return fmt.Errorf("writeJSONFile(%s) > %w", s.path, err)
	}
	s.cache = papers
	s.cachedAt = time.Now()
	s.idIndex = buildIndex(papers)
	s.hasCached = true
	return nil
}

func buildIndex(papers []paper.Paper) map[string]int {
	index := make(map[string]int, len(papers))
	for i, p := range papers {
		index[p.ID] = i
	}
	return index
}
