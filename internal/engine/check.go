package engine

import (
	"fmt"
	"runtime/debug"

	"github.com/jeduden/denojsonlint/internal/config"
	"github.com/jeduden/denojsonlint/internal/jsonc"
	"github.com/jeduden/denojsonlint/internal/lint"
	"github.com/jeduden/denojsonlint/internal/rule"
)

// Options selects the rules that run on one document and their severity.
type Options struct {
	// Include, when non-empty, limits the run to these rule IDs.
	Include []string
	// Config is the effective configuration of the document.
	Config *config.Config
	// Member marks a workspace member document.
	Member bool
	// Rules is the candidate rule set. Nil means every registered rule.
	Rules []rule.Rule
}

// RuleError reports a rule that panicked. A pass that hits one yields no
// diagnostics.
type RuleError struct {
	RuleID string
	Value  any
	Stack  []byte
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s failed: %v", e.RuleID, e.Value)
}

// Lint parses source and runs the selected rules against it. A document
// that cannot be parsed yields no diagnostics and no error.
func Lint(source []byte, opts Options) ([]lint.Diagnostic, error) {
	return LintFile(lint.NewFile("", source), opts)
}

// pathGroup is the set of rules interested in one path.
type pathGroup struct {
	path  jsonc.Path
	rules []rule.Rule
}

// groupByPath collects the distinct paths of rules in first-seen order.
// A rule listing the same path twice is called once for it.
func groupByPath(rules []rule.Rule) []*pathGroup {
	var groups []*pathGroup
	index := make(map[string]*pathGroup)
	for _, r := range rules {
		for _, p := range r.Paths() {
			key := p.Key()
			g, ok := index[key]
			if !ok {
				g = &pathGroup{path: p}
				index[key] = g
				groups = append(groups, g)
			}
			if len(g.rules) > 0 && g.rules[len(g.rules)-1].ID == r.ID {
				continue
			}
			g.rules = append(g.rules, r)
		}
	}
	return groups
}

// Select returns the rules that run on a document under opts, in
// candidate order.
func Select(opts Options) []rule.Rule {
	candidates := opts.Rules
	if candidates == nil {
		candidates = rule.All()
	}
	return config.ActiveRules(candidates, config.Selection{
		Include: opts.Include,
		Config:  opts.Config,
		Member:  opts.Member,
	})
}

// LintFile runs the selected rules against an already parsed file.
func LintFile(f *lint.File, opts Options) ([]lint.Diagnostic, error) {
	if f.Tree == nil {
		return nil, nil
	}
	return lintRules(f, Select(opts), opts.Config)
}

// lintRules runs active, already selected, against f. cfg supplies the
// severity of each finding.
func lintRules(f *lint.File, active []rule.Rule, cfg *config.Config) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic
	for _, g := range groupByPath(active) {
		node := f.Tree.Find(g.path)
		for _, r := range g.rules {
			findings, err := invoke(r, g.path, node)
			if err != nil {
				return nil, err
			}
			for _, fd := range findings {
				line, col := f.Position(fd.Node)
				diags = append(diags, lint.Diagnostic{
					File:     f.Path,
					Line:     line,
					Column:   col,
					RuleID:   r.ID,
					Severity: cfg.Severity(r.ID),
					Message:  fd.Message,
				})
			}
		}
	}

	lint.Sort(diags)
	return diags, nil
}

// invoke calls one rule and converts a panic into a *RuleError.
func invoke(r rule.Rule, path jsonc.Path, node jsonc.Node) (findings []rule.Finding, err error) {
	defer func() {
		if v := recover(); v != nil {
			findings = nil
			err = &RuleError{RuleID: r.ID, Value: v, Stack: debug.Stack()}
		}
	}()
	r.Check(func(message string, n jsonc.Node) {
		findings = append(findings, rule.Finding{Message: message, Node: n})
	}, path, node)
	return findings, nil
}
