// Package ruletest runs a single rule through the engine for tests.
package ruletest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jeduden/denojsonlint/internal/engine"
	"github.com/jeduden/denojsonlint/internal/rule"
)

// Want is the expected part of one diagnostic.
type Want struct {
	Line    int
	Column  int
	Message string
}

// Expect lints src with r alone, as the workspace root, and compares the
// diagnostics against want.
func Expect(t testing.TB, r rule.Rule, src string, want []Want) {
	t.Helper()
	expect(t, r, src, false, want)
}

// ExpectMember is Expect for a workspace member document.
func ExpectMember(t testing.TB, r rule.Rule, src string, want []Want) {
	t.Helper()
	expect(t, r, src, true, want)
}

func expect(t testing.TB, r rule.Rule, src string, member bool, want []Want) {
	t.Helper()
	diags, err := engine.Lint([]byte(src), engine.Options{
		Rules:  []rule.Rule{r},
		Member: member,
	})
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	got := make([]Want, 0, len(diags))
	for _, d := range diags {
		if d.RuleID != r.ID {
			t.Errorf("diagnostic from unexpected rule %s", d.RuleID)
		}
		got = append(got, Want{Line: d.Line, Column: d.Column, Message: d.Message})
	}
	if want == nil {
		want = []Want{}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}
