package requireallowlist

import (
	"strings"

	"github.com/jeduden/denojsonlint/internal/jsonc"
	"github.com/jeduden/denojsonlint/internal/permission"
	"github.com/jeduden/denojsonlint/internal/rule"
	"github.com/jeduden/denojsonlint/internal/schema"
)

func init() {
	rule.Register(Rule)
}

const (
	permissionMessage = "An allow list should be specified"
	scriptsMessage    = "A list of npm packages allowed to run lifecycle scripts should be specified"
)

// Rule reports permission grants that are not narrowed by an allow list.
var Rule = rule.Rule{
	ID:          "require-allow-list",
	Description: "Requires permissions to be granted with an allow list.",
	Tags:        []rule.Tag{rule.TagRecommended, rule.TagSecurity, rule.TagPermissions},
	Paths: func() []jsonc.Path {
		paths := []jsonc.Path{schema.TasksPath()}
		paths = append(paths, schema.PermissionPaths()...)
		return append(paths, schema.AllowScriptsPaths()...)
	},
	Check: check,
}

func check(report rule.Reporter, path jsonc.Path, n jsonc.Node) {
	switch {
	case path.Equal(schema.TasksPath()):
		checkTasks(report, n)
	case schema.IsPermissionPath(path):
		checkPermissions(report, path, n)
	default:
		checkAllowScripts(report, n)
	}
}

func checkTasks(report rule.Reporter, n jsonc.Node) {
	for _, task := range schema.Tasks(n) {
		kinds := permission.FindLaxFlags(permission.SplitCommand(task.Command))
		if len(kinds) == 0 {
			continue
		}
		flags := make([]string, len(kinds))
		for i, k := range kinds {
			flags[i] = k.Flag()
		}
		report(permissionMessage+" for "+strings.Join(flags, ", "), task.Value)
	}
}

func checkPermissions(report rule.Reporter, path jsonc.Path, n jsonc.Node) {
	for _, set := range schema.PermissionSets(path, n) {
		for _, m := range set.Members() {
			if m.Key == schema.KeyAll {
				continue
			}
			if m.Value.IsTrue() {
				report(permissionMessage, m.Value)
			}
		}
	}
}

// checkAllowScripts handles both allowScripts and allowScripts.allow.
// An object value is left to the nested path.
func checkAllowScripts(report rule.Reporter, n jsonc.Node) {
	if n.IsTrue() || (n.Kind() == jsonc.Array && len(n.Elements()) == 0) {
		report(scriptsMessage, n)
	}
}
