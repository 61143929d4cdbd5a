// Package match ranks candidate lines against a query. The session consumes
// only the Matcher contract; the concrete algorithms live behind New.
package match

import (
	"errors"
	"fmt"
	"strings"
)

// Result pairs a candidate with the relevance score assigned for one query.
// Larger scores rank higher; a score of zero or below means "no match".
type Result struct {
	Candidate string
	Score     int
}

// Matcher ranks candidates for a query. Implementations must be deterministic:
// the same query against the same candidates yields the same results in the
// same order.
type Matcher interface {
	Match(query string, candidates []string) []Result
}

// ErrUnknownAlgorithm is returned by New for an unrecognised name.
var ErrUnknownAlgorithm = errors.New("unknown match algorithm")

const (
	AlgorithmFuzzy = "fuzzy"
	AlgorithmRank  = "rank"
)

// Algorithms lists the names accepted by New.
func Algorithms() []string {
	return []string{AlgorithmFuzzy, AlgorithmRank}
}

// New returns the matcher registered under name. An empty name selects the
// default fuzzy matcher.
func New(name string) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmFuzzy:
		return Fuzzy{}, nil
	case AlgorithmRank:
		return Rank{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms(), ", "))
	}
}

// unscored returns every candidate with a zero score in input order.
func unscored(candidates []string) []Result {
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{Candidate: c}
	}
	return results
}
