package match

import "github.com/sahilm/fuzzy"

// Fuzzy ranks candidates with sahilm/fuzzy, which rewards consecutive and
// word-boundary matches. Every matching candidate gets a score of at least 1;
// the remaining candidates follow with score 0 in input order.
type Fuzzy struct{}

func (Fuzzy) Match(query string, candidates []string) []Result {
	if query == "" || len(candidates) == 0 {
		return unscored(candidates)
	}
	matches := fuzzy.Find(query, candidates)
	if len(matches) == 0 {
		return unscored(candidates)
	}
	// sahilm scores can be negative for sparse matches; shift the range so
	// the weakest match still sorts above the non-matches.
	lowest := matches[0].Score
	for _, m := range matches[1:] {
		if m.Score < lowest {
			lowest = m.Score
		}
	}
	results := make([]Result, 0, len(candidates))
	matched := make([]bool, len(candidates))
	for _, m := range matches {
		results = append(results, Result{Candidate: m.Str, Score: m.Score - lowest + 1})
		matched[m.Index] = true
	}
	for i, c := range candidates {
		if !matched[i] {
			results = append(results, Result{Candidate: c})
		}
	}
	return results
}
