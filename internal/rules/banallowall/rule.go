package banallowall

import (
	"slices"

	"github.com/jeduden/denojsonlint/internal/jsonc"
	"github.com/jeduden/denojsonlint/internal/permission"
	"github.com/jeduden/denojsonlint/internal/rule"
	"github.com/jeduden/denojsonlint/internal/schema"
)

func init() {
	rule.Register(Rule)
}

const (
	flagMessage = "--allow-all/-A should not be used"
	allMessage  = "`all: true` should not be used"
)

// Rule reports grants of every permission at once, in task commands and
// in permission sets.
var Rule = rule.Rule{
	ID:          "ban-allow-all",
	Description: "Disallows `--allow-all`, `-A` and `all: true`.",
	Tags:        []rule.Tag{rule.TagRecommended, rule.TagSecurity, rule.TagPermissions},
	Paths: func() []jsonc.Path {
		return append([]jsonc.Path{schema.TasksPath()}, schema.PermissionPaths()...)
	},
	Check: check,
}

func check(report rule.Reporter, path jsonc.Path, n jsonc.Node) {
	if schema.IsPermissionPath(path) {
		for _, set := range schema.PermissionSets(path, n) {
			if all := set.Get(schema.KeyAll); all.IsTrue() {
				report(allMessage, all)
			}
		}
		return
	}
	for _, task := range schema.Tasks(n) {
		if slices.ContainsFunc(permission.SplitCommand(task.Command), permission.IsAllowAllFlag) {
			report(flagMessage, task.Value)
		}
	}
}
