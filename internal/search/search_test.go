package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

func testPapers() []paper.Paper {
	return []paper.Paper{
		{
			ID:          "1",
			PaperTitle:  "Attention Is All You Need",
			Authors:     "Vaswani et al.",
			Methodology: "Transformer architecture with multi-head attention",
			Keywords:    []string{"transformers", "attention"},
			Category:    []string{"nlp"},
			AddedDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			PaperTitle: "Deep Residual Learning for Image Recognition",
			Authors:    "He et al.",
			Keywords:   []string{"resnet"},
			Category:   []string{"computer_vision"},
			AddedDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			PaperTitle: "BERT: Pre-training of Deep Bidirectional Transformers",
			Authors:    "Devlin et al.",
			Keywords:   []string{"transformers", "pretraining"},
			Category:   []string{"nlp"},
			AddedDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func paperIDs(papers []paper.Paper) []string {
	var ids []string
	for _, p := range papers {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		wantIDs []string
	}{
		{
			name:    "empty filters match everything",
			filters: Filters{},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "query matches any text field",
			filters: Filters{Query: "multi-head"},
			wantIDs: []string{"1"},
		},
		{
			name:    "query is case insensitive",
			filters: Filters{Query: "TRANSFORMERS"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "category filter",
			filters: Filters{Categories: []string{"nlp"}},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "keyword filter",
			filters: Filters{Keywords: []string{"resnet"}},
			wantIDs: []string{"2"},
		},
		{
			name:    "filters combine",
			filters: Filters{Query: "bert", Categories: []string{"nlp"}},
			wantIDs: []string{"3"},
		},
		{
			name:    "no match",
			filters: Filters{Query: "quantum"},
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(testPapers(), tt.filters)
			assert.Equal(t, tt.wantIDs, paperIDs(got))
		})
	}
}

func TestByTitle(t *testing.T) {
	got := ByTitle(testPapers(), "deep")
	assert.Equal(t, []string{"2", "3"}, paperIDs(got))

	assert.Nil(t, ByTitle(testPapers(), "  "))
}

func TestByAuthor(t *testing.T) {
	got := ByAuthor(testPapers(), "devlin")
	assert.Equal(t, []string{"3"}, paperIDs(got))
}

func TestFilterByCategory(t *testing.T) {
	got := FilterByCategory(testPapers(), "computer_vision")
	assert.Equal(t, []string{"2"}, paperIDs(got))
}

func TestFilterByKeyword(t *testing.T) {
	got := FilterByKeyword(testPapers(), "pretraining")
	assert.Equal(t, []string{"3"}, paperIDs(got))
}

func TestAllCategories(t *testing.T) {
	assert.Equal(t, []string{"computer_vision", "nlp"}, AllCategories(testPapers()))
}

func TestAllKeywords(t *testing.T) {
	assert.Equal(t, []string{"attention", "pretraining", "resnet", "transformers"}, AllKeywords(testPapers()))
}

func TestRecent(t *testing.T) {
	got := Recent(testPapers(), 2)
	assert.Equal(t, []string{"3", "2"}, paperIDs(got))

	all := Recent(testPapers(), 0)
	assert.Len(t, all, 3)
}
