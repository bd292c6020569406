// Package schema names the fields of the runtime configuration document
// that the linter understands, and decodes the shapes rules share.
package schema

import (
	"github.com/jeduden/denojsonlint/internal/jsonc"
)

// Top-level and nested field names.
const (
	KeyLock                 = "lock"
	KeyMinimumDependencyAge = "minimumDependencyAge"
	KeyTasks                = "tasks"
	KeyCommand              = "command"
	KeyPermissions          = "permissions"
	KeyBench                = "bench"
	KeyCompile              = "compile"
	KeyTest                 = "test"
	KeyAll                  = "all"
	KeyAllowScripts         = "allowScripts"
	KeyAllow                = "allow"
	KeyWorkspace            = "workspace"
	KeyMembers              = "members"

	// KeyLintConfig holds the linter's own configuration block.
	KeyLintConfig = "deno-json-lint"
)

// TasksPath is the path of the task map.
func TasksPath() jsonc.Path { return jsonc.P(KeyTasks) }

// PermissionPaths returns every path at which permissions are declared:
// the top-level map of named sets, and the single sets used by the
// bench, compile and test subcommands.
func PermissionPaths() []jsonc.Path {
	return []jsonc.Path{
		jsonc.P(KeyPermissions),
		jsonc.P(KeyBench, KeyPermissions),
		jsonc.P(KeyCompile, KeyPermissions),
		jsonc.P(KeyTest, KeyPermissions),
	}
}

// AllowScriptsPaths returns the paths of the lifecycle-script allow list.
func AllowScriptsPaths() []jsonc.Path {
	return []jsonc.Path{
		jsonc.P(KeyAllowScripts),
		jsonc.P(KeyAllowScripts, KeyAllow),
	}
}

// IsPermissionPath reports whether p is one of PermissionPaths.
func IsPermissionPath(p jsonc.Path) bool {
	return p.HasSuffix(KeyPermissions)
}

// IsTopLevelPermissions reports whether p is the top-level permissions map.
func IsTopLevelPermissions(p jsonc.Path) bool {
	return p.Equal(jsonc.P(KeyPermissions))
}

// Task is one entry of the task map.
type Task struct {
	Name string
	// Value is the node attributed to findings: the command string or
	// the task object.
	Value   jsonc.Node
	Command string
}

// Tasks decodes the task map. Entries that are neither a command string
// nor an object with a string command are skipped.
func Tasks(tasks jsonc.Node) []Task {
	var out []Task
	for _, m := range tasks.Members() {
		switch m.Value.Kind() {
		case jsonc.String:
			cmd, _ := m.Value.Str()
			out = append(out, Task{Name: m.Key, Value: m.Value, Command: cmd})
		case jsonc.Object:
			cmd, ok := m.Value.Get(KeyCommand).Str()
			if !ok {
				continue
			}
			out = append(out, Task{Name: m.Key, Value: m.Value, Command: cmd})
		}
	}
	return out
}

// PermissionSets returns the permission sets declared at path p. The
// top-level map holds named sets; the subcommand forms are a single set.
func PermissionSets(p jsonc.Path, n jsonc.Node) []jsonc.Node {
	if n.Kind() != jsonc.Object {
		return nil
	}
	if !IsTopLevelPermissions(p) {
		return []jsonc.Node{n}
	}
	var sets []jsonc.Node
	for _, m := range n.Members() {
		if m.Value.Kind() == jsonc.Object {
			sets = append(sets, m.Value)
		}
	}
	return sets
}
