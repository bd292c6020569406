package requirelockfile

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

// Rule reports a disabled lockfile, either through `lock: false` or a
// task that runs with --no-lock.
var Rule = rule.Rule{
	ID:          "require-lockfile",
	Description: "Requires the lockfile to be enabled.",
	Tags:        []rule.Tag{rule.TagRecommended, rule.TagSecurity},
	RootOnly:    true,
	Paths: func() []jsonc.Path {
		return []jsonc.Path{jsonc.P(schema.KeyLock), schema.TasksPath()}
	},
	Check: check,
}

func check(report rule.Reporter, path jsonc.Path, n jsonc.Node) {
	if path.Equal(schema.TasksPath()) {
		for _, task := range schema.Tasks(n) {
			if slices.ContainsFunc(permission.SplitCommand(task.Command), permission.IsNoLockFlag) {
				report("--no-lock should not be used", task.Value)
			}
		}
		return
	}
	if n.IsFalse() {
		report("A lockfile should be enabled", n)
	}
}
