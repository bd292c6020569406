package config

import (
	"slices"

	"github.com/jeduden/denojsonlint/internal/rule"
)

// Selection narrows the set of rules that run on one document.
type Selection struct {
	// Include, when non-empty, limits the run to these rule IDs.
	Include []string
	// Config turns rules off with level "off".
	Config *Config
	// Member is set for workspace members; root-only rules are skipped.
	Member bool
}

// ActiveRules returns the rules of all that pass every filter of sel,
// in their original order.
func ActiveRules(all []rule.Rule, sel Selection) []rule.Rule {
	var active []rule.Rule
	for _, r := range all {
		if len(sel.Include) > 0 && !slices.Contains(sel.Include, r.ID) {
			continue
		}
		if sel.Config.IsOff(r.ID) {
			continue
		}
		if sel.Member && r.RootOnly {
			continue
		}
		active = append(active, r)
	}
	return active
}
