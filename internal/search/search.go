// Package search filters paper collections in memory. The collection
// is small enough that linear scans over the searchable text beat any
// indexing scheme.
package search

import (
	"sort"
	"strings"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

// Filters narrows a collection. Empty fields match everything, and a
// paper must satisfy every non-empty field.
type Filters struct {
	Query      string
	Categories []string
	Keywords   []string
}

// Search returns the papers matching every filter, preserving order.
func Search(papers []paper.Paper, filters Filters) []paper.Paper {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	var matched []paper.Paper
	for _, p := range papers {
		if query != "" && !strings.Contains(p.SearchableText(), query) {
			continue
		}
		if !matchesAnyCategory(p, filters.Categories) {
			continue
		}
		if !matchesAnyKeyword(p, filters.Keywords) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func matchesAnyCategory(p paper.Paper, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, category := range categories {
		if p.HasCategory(category) {
			return true
		}
	}
	return false
}

func matchesAnyKeyword(p paper.Paper, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	for _, keyword := range keywords {
		if p.HasKeyword(keyword) {
			return true
		}
	}
	return false
}

// ByTitle returns the papers whose title contains the query.
func ByTitle(papers []paper.Paper, query string) []paper.Paper {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []paper.Paper
	for _, p := range papers {
		if strings.Contains(strings.ToLower(p.PaperTitle), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ByAuthor returns the papers whose author list contains the query.
func ByAuthor(papers []paper.Paper, query string) []paper.Paper {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matched []paper.Paper
	for _, p := range papers {
		if strings.Contains(strings.ToLower(p.Authors), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByCategory returns the papers in the given category.
func FilterByCategory(papers []paper.Paper, category string) []paper.Paper {
	var matched []paper.Paper
	for _, p := range papers {
		if p.HasCategory(category) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByKeyword returns the papers tagged with the given keyword.
func FilterByKeyword(papers []paper.Paper, keyword string) []paper.Paper {
	var matched []paper.Paper
	for _, p := range papers {
		if p.HasKeyword(keyword) {
			matched = append(matched, p)
		}
	}
	return matched
}

// AllCategories returns the distinct categories in use, sorted.
func AllCategories(papers []paper.Paper) []string {
	return distinct(papers, func(p paper.Paper) []string {
		return p.Category
	})
}

// AllKeywords returns the distinct keywords in use, sorted.
func AllKeywords(papers []paper.Paper) []string {
	return distinct(papers, func(p paper.Paper) []string {
		return p.Keywords
	})
}

func distinct(papers []paper.Paper, values func(paper.Paper) []string) []string {
	seen := map[string]struct{}{}
	var results []string
	for _, p := range papers {
		for _, value := range values(p) {
			value = strings.ToLower(strings.TrimSpace(value))
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			results = append(results, value)
		}
	}
	sort.Strings(results)
	return results
}

// Recent returns up to limit papers, newest added first.
func Recent(papers []paper.Paper, limit int) []paper.Paper {
	sorted := make([]paper.Paper, len(papers))
	copy(sorted, papers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AddedDate.After(sorted[j].AddedDate)
	})
	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
