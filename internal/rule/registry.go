package rule

import (
	"fmt"
	"sort"
)

var registry []Rule

// Register adds a rule to the global registry. It panics when the rule
// is incomplete or its ID is already taken; rules register from init.
func Register(r Rule) {
	if r.ID == "" || r.Paths == nil || r.Check == nil {
		panic(fmt.Sprintf("rule: incomplete rule %q", r.ID))
	}
	if _, ok := ByID(r.ID); ok {
		panic(fmt.Sprintf("rule: duplicate rule ID %q", r.ID))
	}
	registry = append(registry, r)
}

// All returns a copy of all registered rules.
func All() []Rule {
	result := make([]Rule, len(registry))
	copy(result, registry)
	return result
}

// ByID returns the registered rule with the given ID.
func ByID(id string) (Rule, bool) {
	for _, r := range registry {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// IDs returns the sorted IDs of all registered rules.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for _, r := range registry {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	return ids
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}
