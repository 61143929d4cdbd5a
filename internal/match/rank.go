package match

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Rank orders candidates by Levenshtein distance using lithammer/fuzzysearch,
// folding case and Unicode normalisation. Candidates that do not contain the
// query as a subsequence are omitted from the results.
type Rank struct{}

func (Rank) Match(query string, candidates []string) []Result {
	if query == "" {
		return unscored(candidates)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, candidates)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	worst := ranks[len(ranks)-1].Distance
	results := make([]Result, len(ranks))
	for i, r := range ranks {
		results[i] = Result{Candidate: candidates[r.OriginalIndex], Score: worst - r.Distance + 1}
	}
	return results
}
