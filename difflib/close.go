package difflib

import "sort"

// CloseMatches returns up to n of the best "good enough" matches for word
// among possibilities. Only candidates whose similarity ratio with word is at
// least cutoff are returned, most similar first, ties in their original
// order. Words are compared character by character, a character being a
// grapheme cluster. If n <= 0 or cutoff is outside [0, 1], it returns nil.
func CloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 || cutoff < 0.0 || cutoff > 1.0 {
		return nil
	}

	// word is the second sequence of every comparison, so its index is built
	// once and shared.
	wordChars := SplitGraphemes(word)
	index := newIndex(wordChars, nil, true)

	type candidate struct {
		score float64
		idx   int
		val   string
	}
	var results []candidate
	for i, p := range possibilities {
		m := newMatcherWithIndex(SplitGraphemes(p), wordChars, index)
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if s := m.Ratio(); s >= cutoff {
				results = append(results, candidate{score: s, idx: i, val: p})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].idx < results[j].idx
		}
		return results[i].score > results[j].score
	})

	if len(results) > n {
		results = results[:n]
	}
	out := make([]string, len(results))
	for i, c := range results {
		out[i] = c.val
	}
	return out
}
