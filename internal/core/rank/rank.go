// Package rank orders scored candidates deterministically
package rank

import "sort"

// Key is the sortable identity of one scored item
type Key struct {
	ID    string
	Score float64
}

// Order filters, sorts, and truncates items in place-independent fashion:
// drop anything below minScore, sort by score descending with id ascending as
// the tie-break, then keep at most max entries (max <= 0 means unbounded).
// The result never depends on the input order
func Order[T any](items []T, key func(T) Key, minScore float64, max int) []T {
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if key(it).Score >= minScore {
			kept = append(kept, it)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		ki, kj := key(kept[i]), key(kept[j])
		if ki.Score != kj.Score {
			return ki.Score > kj.Score
		}
		return ki.ID < kj.ID
	})
	if max > 0 && len(kept) > max {
		kept = kept[:max]
	}
	return kept
}
