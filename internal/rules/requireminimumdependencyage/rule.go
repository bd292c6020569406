package requireminimumdependencyage

import (
	"github.com/jeduden/denojsonlint/internal/jsonc"
	"github.com/jeduden/denojsonlint/internal/rule"
	"github.com/jeduden/denojsonlint/internal/schema"
)

func init() {
	rule.Register(Rule)
}

// Rule reports a document that does not configure minimumDependencyAge.
var Rule = rule.Rule{
	ID:          "require-minimum-dependency-age",
	Description: "Requires `minimumDependencyAge` to be configured.",
	Tags:        []rule.Tag{rule.TagRecommended, rule.TagSecurity, rule.TagDependencies},
	RootOnly:    true,
	Paths: func() []jsonc.Path {
		return []jsonc.Path{jsonc.P(schema.KeyMinimumDependencyAge)}
	},
	Check: func(report rule.Reporter, _ jsonc.Path, n jsonc.Node) {
		if !n.Exists() {
			report("`minimumDependencyAge` should be configured", jsonc.Node{})
		}
	},
}
