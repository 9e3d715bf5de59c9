package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

func readYamlFile[T any](filePath string) (T, error) {
	var result T
	file, err := os.Open(filePath)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s) > %w", filePath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder.Decode() > %w", err)
	}
	return result, nil
}

func writeYamlFile[T any](filePath string, data T) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", filePath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	defer func() {
		_ = encoder.Close()
	}()
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	return nil
}

// ExportYAML writes the whole collection to a YAML file for exchange
// with other tools.
func (s *Store) ExportYAML(outPath string) error {
	papers, err := s.LoadAll()
	if err != nil {
		return fmt.Errorf("s.LoadAll() > %w", err)
	}
	if err := writeYamlFile(outPath, papers); err != nil {
		return fmt.Errorf("writeYamlFile(%s) > %w", outPath, err)
	}
	return nil
}

// ImportYAML merges papers from a YAML file into the collection.
// Papers whose IDs already exist are updated, the rest are added.
// It returns the number of imported papers.
func (s *Store) ImportYAML(inPath string) (int, error) {
	imported, err := readYamlFile[[]paper.Paper](inPath)
	if err != nil {
		return 0, fmt.Errorf("readYamlFile(%s) > %w", inPath, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	papers, err := s.loadLocked()
	if err != nil {
		return 0, err
	}

	byID := make(map[string]int, len(papers))
	for i, p := range papers {
		byID[p.ID] = i
	}
	count := 0
	for _, p := range imported {
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("p.Validate() > %w", err)
		}
		p = p.Normalize(s.params)
		if i, ok := byID[p.ID]; ok {
			papers[i] = p
		} else {
			byID[p.ID] = len(papers)
			papers = append(papers, p)
		}
		count++
	}

	if err := s.saveLocked(papers); err != nil {
		return 0, err
	}
	return count, nil
}
