package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jeduden/denojsonlint/internal/config"
	"github.com/jeduden/denojsonlint/internal/lint"
	"github.com/jeduden/denojsonlint/internal/log"
	"github.com/jeduden/denojsonlint/internal/rule"
	"github.com/jeduden/denojsonlint/internal/workspace"
)

// Runner drives the linting pipeline over the documents of a workspace:
// for each document it builds a File (parsing the tree once), determines
// the effective configuration, runs the active rules, and collects
// diagnostics.
type Runner struct {
	// Rules is the candidate rule set. Nil means every registered rule.
	Rules   []rule.Rule
	Include []string
	// Config is the ancestor of every document's own lint block,
	// typically read from a config file.
	Config *config.Config
	// Concurrency bounds the documents linted at once; zero or less
	// means no limit.
	Concurrency int
	Logger      *log.Logger
}

// ErrInvalidDocument is reported for a workspace root that cannot be
// parsed. Members that cannot be parsed are skipped instead.
var ErrInvalidDocument = errors.New("not a valid JSON(C) document")

// Result holds the output of a lint run.
type Result struct {
	// Diagnostics are grouped by document in input order, each group
	// ordered as by lint.Sort.
	Diagnostics []lint.Diagnostic
	Errors      []error
}

// Run lints docs. A rule failure in one document is reported in Errors
// and does not affect the others. Run stops early only when ctx is done.
func (r *Runner) Run(ctx context.Context, docs []*workspace.Document) *Result {
	diags := make([][]lint.Diagnostic, len(docs))
	errs := make([]error, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}
	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			d, err := r.lintDocument(doc)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", doc.Name, err)
				return nil
			}
			diags[i] = d
			return nil
		})
	}

	res := &Result{}
	if err := g.Wait(); err != nil {
		res.Errors = append(res.Errors, err)
	}
	for i := range docs {
		res.Diagnostics = append(res.Diagnostics, diags[i]...)
		if errs[i] != nil {
			res.Errors = append(res.Errors, errs[i])
		}
	}
	return res
}

func (r *Runner) lintDocument(doc *workspace.Document) ([]lint.Diagnostic, error) {
	f := lint.NewFile(doc.Name, doc.Source)
	if f.Tree == nil {
		if doc.IsRoot() {
			return nil, ErrInvalidDocument
		}
		r.Logger.Printf("%s: not a valid document, skipping rules", doc.Name)
		return nil, nil
	}

	opts := Options{
		Include: r.Include,
		Config:  config.Merge(r.Config, doc.Effective()),
		Member:  !doc.IsRoot(),
		Rules:   r.Rules,
	}
	active := Select(opts)
	if r.Logger != nil && r.Logger.Enabled {
		ids := make([]string, len(active))
		for i, rl := range active {
			ids[i] = rl.ID
		}
		r.Logger.Printf("%s: rules %v", doc.Name, ids)
	}
	return lintRules(f, active, opts.Config)
}

// HasErrors reports whether any diagnostic has error severity.
func (res *Result) HasErrors() bool {
	for _, d := range res.Diagnostics {
		if d.Severity == lint.Error {
			return true
		}
	}
	return false
}
