// Package review selects the papers a study session should cover.
package review

import (
	"sort"
	"time"

	"github.com/at-ishikawa/flashpapers/internal/paper"
)

// Due returns the papers due at the given time, most overdue first.
// Papers that have never been scheduled sort before everything else.
// A limit of 0 means no limit.
func Due(papers []paper.Paper, now time.Time, limit int) []paper.Paper {
	var due []paper.Paper
	for _, p := range papers {
		if p.IsDue(now) {
			due = append(due, p)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		left, right := due[i].NextReviewDate, due[j].NextReviewDate
		if left == nil {
			return right != nil
		}
		if right == nil {
			return false
		}
		return left.Before(*right)
	})

	if limit > 0 && limit < len(due) {
		due = due[:limit]
	}
	return due
}

// CountDue returns how many papers are due at the given time.
func CountDue(papers []paper.Paper, now time.Time) int {
	count := 0
	for _, p := range papers {
		if p.IsDue(now) {
			count++
		}
	}
	return count
}
