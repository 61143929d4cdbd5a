package state

import "github.com/atomicstack/linepick/internal/match"

// Filter derives the visible list from the full candidate set for a query.
// The candidate set is fixed for the lifetime of the filter.
type Filter struct {
	matcher    match.Matcher
	candidates []string
	results    []match.Result
	items      []string
}

// NewFilter builds a filter over candidates. The slice is not copied and must
// not be modified afterwards.
func NewFilter(matcher match.Matcher, candidates []string) *Filter {
	return &Filter{matcher: matcher, candidates: candidates}
}

// Recompute runs the matcher for query against every candidate and replaces
// the visible list.
func (f *Filter) Recompute(query string) []string {
	f.results = f.matcher.Match(query, f.candidates)
	f.items = Visible(query, f.results)
	return f.items
}

// Items returns the visible list from the last Recompute.
func (f *Filter) Items() []string {
	return f.items
}

// Results returns the raw matcher output from the last Recompute.
func (f *Filter) Results() []match.Result {
	return f.results
}

// Candidates returns the number of candidates being filtered.
func (f *Filter) Candidates() int {
	return len(f.candidates)
}

// Visible applies the inclusion rule to matcher output: an empty query keeps
// every result, otherwise only positive scores survive. Matcher order is kept.
func Visible(query string, results []match.Result) []string {
	items := make([]string, 0, len(results))
	for _, r := range results {
		if query == "" || r.Score > 0 {
			items = append(items, r.Candidate)
		}
	}
	return items
}
