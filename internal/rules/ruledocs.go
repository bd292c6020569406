// Package rules embeds the documentation of the built-in rules. The rule
// implementations live in one subpackage per rule.
package rules

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

//go:embed */README.md
var rulesFS embed.FS

// frontMatterSchema constrains the front matter of every rule README.
const frontMatterSchema = `
id:          =~"^[a-z][a-z0-9]*(-[a-z0-9]+)*$"
description: string & !=""
tags?: [...("recommended" | "security" | "permissions" | "dependencies")]
`

// RuleInfo holds metadata extracted from a rule README's front matter.
type RuleInfo struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Content     string   `yaml:"-"`
}

// ListRules returns all embedded rules sorted by ID.
func ListRules() ([]RuleInfo, error) {
	return listRulesFromFS(rulesFS)
}

// LookupRule finds a rule by ID and returns its full README content.
func LookupRule(id string) (string, error) {
	return lookupRuleFromFS(rulesFS, id)
}

// Markdown renders the rule reference page.
func Markdown() (string, error) {
	rules, err := ListRules()
	if err != nil {
		return "", err
	}
	return renderMarkdown(rules), nil
}

func listRulesFromFS(fsys fs.FS) ([]RuleInfo, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading rules directory: %w", err)
	}

	var rules []RuleInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := entry.Name() + "/README.md"
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			continue
		}
		info, err := parseFrontMatter(data)
		if err != nil {
			continue
		}
		info.Content = string(data)
		rules = append(rules, info)
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	return rules, nil
}

func lookupRuleFromFS(fsys fs.FS, id string) (string, error) {
	rules, err := listRulesFromFS(fsys)
	if err != nil {
		return "", err
	}

	for _, r := range rules {
		if r.ID == id {
			return r.Content, nil
		}
	}

	return "", fmt.Errorf("unknown rule %q", id)
}

// parseFrontMatter decodes the YAML front matter of a README.
func parseFrontMatter(data []byte) (RuleInfo, error) {
	md := goldmark.New(goldmark.WithExtensions(&frontmatter.Extender{}))
	ctx := parser.NewContext()
	md.Parser().Parse(text.NewReader(data), parser.WithContext(ctx))

	d := frontmatter.Get(ctx)
	if d == nil {
		return RuleInfo{}, fmt.Errorf("missing front matter")
	}

	var raw map[string]any
	if err := d.Decode(&raw); err != nil {
		return RuleInfo{}, fmt.Errorf("decoding front matter: %w", err)
	}
	if err := validateFrontMatter(raw); err != nil {
		return RuleInfo{}, err
	}

	var info RuleInfo
	if err := d.Decode(&info); err != nil {
		return RuleInfo{}, fmt.Errorf("decoding front matter: %w", err)
	}
	return info, nil
}

func validateFrontMatter(fm map[string]any) error {
	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(frontMatterSchema)
	if err := schemaVal.Err(); err != nil {
		return fmt.Errorf("invalid front matter schema: %w", err)
	}

	if fm == nil {
		fm = map[string]any{}
	}
	data, err := json.Marshal(fm)
	if err != nil {
		return fmt.Errorf("serialize front matter: %w", err)
	}
	dataVal := ctx.CompileBytes(data)
	if err := dataVal.Err(); err != nil {
		return fmt.Errorf("compile front matter: %w", err)
	}

	if err := schemaVal.Unify(dataVal).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	return nil
}

func renderMarkdown(rules []RuleInfo) string {
	var b strings.Builder
	b.WriteString("## Rules\n\n<!-- This file was automatically generated -->\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "\n## `%s`\n\n", r.ID)
		fmt.Fprintf(&b, "- **Description**: %s\n", r.Description)
		fmt.Fprintf(&b, "- **Tags**: %s\n", strings.Join(r.Tags, ", "))
	}
	return b.String()
}
