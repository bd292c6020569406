package requireallowlist

import (
	"fmt"
	"testing"

	"github.com/jeduden/denojsonlint/internal/rule/ruletest"
)

type want = ruletest.Want

func TestCheck_LongFlagsInTasks(t *testing.T) {
	tests := []struct {
		kind      string
		allowList string
	}{
		{"read", "testdata"},
		{"net", "localhost"},
		{"run", "deno"},
		{"scripts", "npm:duckdb"},
	}
	for _, tt := range tests {
		t.Run("--allow-"+tt.kind, func(t *testing.T) {
			src := fmt.Sprintf(`{
    "tasks": {
      "simple:ok": "deno run --allow-%[1]s=%[2]s --quiet src/cli.ts",
      "simple:ng": "deno run --allow-%[1]s src/cli.ts",
      "complex:ok": {
        "command": "deno run --allow-%[1]s=%[2]s --reload src/cli.ts"
      },
      "complex:ng": {
        "description": "This is invalid",
        "command": "deno run --allow-%[1]s src/cli.ts"
      }
    }
  }`, tt.kind, tt.allowList)
			msg := permissionMessage + " for --allow-" + tt.kind
			ruletest.Expect(t, Rule, src, []want{
				{Line: 4, Column: 20, Message: msg},
				{Line: 8, Column: 21, Message: msg},
			})
		})
	}
}

func TestCheck_ShortFlags(t *testing.T) {
	src := `{
  "tasks": {
    "ok": "deno run -R=testdata --quiet src/cli.ts",
    "ng": "deno run -N --quiet src/cli.ts"
  }
}`
	ruletest.Expect(t, Rule, src, []want{
		{Line: 4, Column: 11, Message: "An allow list should be specified for --allow-net"},
	})
}

func TestCheck_CombinedFlags(t *testing.T) {
	src := `{
  "tasks": {
    "ng": "deno run --allow-read -NS -E=DENO_DIR --allow-run=deno --quiet src/cli.ts"
  }
}`
	ruletest.Expect(t, Rule, src, []want{
		{Line: 3, Column: 11, Message: "An allow list should be specified for --allow-read, --allow-net, --allow-sys"},
	})
}

func TestCheck_Permissions(t *testing.T) {
	src := `{
  "permissions": {
    "ok": { "all": true, "read": ["testdata"] },
    "ng": { "read": true, "sys": true }
  }
}`
	ruletest.Expect(t, Rule, src, []want{
		{Line: 4, Column: 21, Message: permissionMessage},
		{Line: 4, Column: 34, Message: permissionMessage},
	})
}

func TestCheck_SubcommandPermissions(t *testing.T) {
	src := `{
  "bench": {
    "permissions": { "write": true }
  },
  "compile": {
    "permissions": { "ffi": true }
  },
  "test": {
    "permissions": { "net": true }
  }
}`
	ruletest.Expect(t, Rule, src, []want{
		{Line: 3, Column: 31, Message: permissionMessage},
		{Line: 6, Column: 29, Message: permissionMessage},
		{Line: 9, Column: 29, Message: permissionMessage},
	})
}

func TestCheck_AllowScripts(t *testing.T) {
	for _, value := range []string{"true", "[]"} {
		t.Run("allowScripts: "+value, func(t *testing.T) {
			ruletest.Expect(t, Rule, "{\n  \"allowScripts\": "+value+"\n}", []want{
				{Line: 2, Column: 19, Message: scriptsMessage},
			})
		})
		t.Run("allowScripts.allow: "+value, func(t *testing.T) {
			ruletest.Expect(t, Rule, "{\n  \"allowScripts\": {\n    \"allow\": "+value+"\n  }\n}", []want{
				{Line: 3, Column: 14, Message: scriptsMessage},
			})
		})
	}
}

func TestCheck_AllowScriptsWithAllowList(t *testing.T) {
	for _, src := range []string{
		`{"allowScripts": ["npm:better-sqlite3"]}`,
		`{"allowScripts": {"allow": ["npm:better-sqlite3"]}}`,
		`{"allowScripts": false}`,
		`{"allowScripts": {}}`,
	} {
		t.Run(src, func(t *testing.T) {
			ruletest.Expect(t, Rule, src, nil)
		})
	}
}

func TestCheck_EmptyAllowListIsLax(t *testing.T) {
	src := `{
  "tasks": {
    "fmt": "deno fmt",
    "empty": "deno run --allow-read= main.ts",
    "scoped": "deno run --allow-env=HOME,PATH -W=dist main.ts"
  },
  "permissions": { "p": { "read": false, "net": ["example.com"] } }
}`
	ruletest.Expect(t, Rule, src, []want{
		{Line: 4, Column: 14, Message: "An allow list should be specified for --allow-read"},
	})
}
