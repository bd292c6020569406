package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestDistance bounds the edit distance of a did-you-mean hint.
const maxSuggestDistance = 3

// UnknownRuleError reports a rule ID that is not registered.
type UnknownRuleError struct {
	ID         string
	Suggestion string
}

func (e *UnknownRuleError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown rule %q (did you mean %q?)", e.ID, e.Suggestion)
	}
	return fmt.Sprintf("unknown rule %q", e.ID)
}

// CheckRuleIDs returns an error for every id that is not in known, or
// nil when all are known.
func CheckRuleIDs(ids, known []string) error {
	var errs []error
	for _, id := range ids {
		if slices.Contains(known, id) {
			continue
		}
		errs = append(errs, &UnknownRuleError{ID: id, Suggestion: suggest(id, known)})
	}
	return errors.Join(errs...)
}

// CheckRules validates the rule IDs configured in c against known.
func (c *Config) CheckRules(known []string) error {
	if c == nil || len(c.Rules) == 0 {
		return nil
	}
	ids := make([]string, 0, len(c.Rules))
	for id := range c.Rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return CheckRuleIDs(ids, known)
}

// suggest picks the closest known ID: a fuzzy match when id is an
// abbreviation of one, otherwise the nearest by edit distance.
func suggest(id string, known []string) string {
	if ranks := fuzzy.RankFindFold(id, known); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, k := range known {
		if d := fuzzy.LevenshteinDistance(id, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
