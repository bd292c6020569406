package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/denojsonlint/internal/config"
	"github.com/jeduden/denojsonlint/internal/engine"
	"github.com/jeduden/denojsonlint/internal/log"
	"github.com/jeduden/denojsonlint/internal/output"
	"github.com/jeduden/denojsonlint/internal/rule"
	"github.com/jeduden/denojsonlint/internal/rules"
	"github.com/jeduden/denojsonlint/internal/workspace"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/jeduden/denojsonlint/internal/rules/banallowall"
	_ "github.com/jeduden/denojsonlint/internal/rules/requireallowlist"
	_ "github.com/jeduden/denojsonlint/internal/rules/requirelockfile"
	_ "github.com/jeduden/denojsonlint/internal/rules/requireminimumdependencyage"
)

// Exit codes.
const (
	exitClean  = 0
	exitErrors = 1
	exitFailed = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

const usageText = `Usage: denojsonlint [command] [flags] [path]

Commands:
  check     Lint deno.json and its workspace members (default)
  help      Show help for rules
  docs      Print the rule reference as Markdown
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'denojsonlint <command> --help' for more information on a command.
`

func run(args []string) int {
	if len(args) == 0 {
		return runCheck(nil)
	}

	switch args[0] {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return exitClean
	case "check":
		return runCheck(args[1:])
	case "help":
		return runHelp(args[1:])
	case "docs":
		return runDocs(args[1:])
	case "version":
		printVersion()
		return exitClean
	}

	// Anything else is a flag or a path for the default command.
	return runCheck(args)
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("denojsonlint %s\n", version)
}

type checkOptions struct {
	configPath string
	include    []string
	format     string
	noColor    bool
	quiet      bool
	verbose    bool
}

// runCheck implements the "check" subcommand.
func runCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	var opts checkOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringArrayVarP(&opts.include, "rule", "r", nil, "Only run this rule (repeatable)")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: "+strings.Join(output.Formats, ", "))
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress diagnostic output")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log discovery and rule selection to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: denojsonlint check [flags] [path]\n\n"+
			"Lint a deno.json or deno.jsonc file and its workspace members.\n\n"+
			"path is a configuration file or a directory containing one.\n"+
			"It defaults to the current directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitClean
		}
		return exitFailed
	}
	if fs.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "denojsonlint: check takes at most one path\n")
		return exitFailed
	}
	if os.Getenv("NO_COLOR") != "" {
		opts.noColor = true
	}

	return check(fs.Arg(0), opts, os.Stdout, os.Stderr)
}

// check lints the workspace at target and returns the exit code.
func check(target string, opts checkOptions, stdout, stderr io.Writer) int {
	logger := &log.Logger{Enabled: opts.verbose, W: stderr}

	formatter, err := output.New(opts.format, !opts.noColor)
	if err != nil {
		fmt.Fprintf(stderr, "denojsonlint: %v\n", err)
		return exitFailed
	}

	known := rule.IDs()
	if err := config.CheckRuleIDs(opts.include, known); err != nil {
		fmt.Fprintf(stderr, "denojsonlint: --rule: %v\n", err)
		return exitFailed
	}

	root, base, name := splitTarget(target)
	cfg, err := loadConfig(opts.configPath, root, logger)
	if err == nil {
		err = cfg.CheckRules(known)
	}
	if err != nil {
		fmt.Fprintf(stderr, "denojsonlint: %v\n", err)
		return exitFailed
	}

	loader := &workspace.Loader{
		FS:         os.DirFS(root),
		Base:       base,
		KnownRules: known,
		Logger:     logger,
	}
	if cfg != nil {
		loader.Ignore = cfg.Ignore
	}
	docs, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(stderr, "denojsonlint: %v\n", err)
		return exitFailed
	}

	runner := &engine.Runner{
		Include: opts.include,
		Config:  cfg,
		Logger:  logger,
	}
	result := runner.Run(context.Background(), docs)

	if !opts.quiet {
		// Text goes to stderr, machine formats to stdout.
		w := stdout
		if _, ok := formatter.(*output.TextFormatter); ok {
			w = stderr
		}
		if len(result.Diagnostics) > 0 || w == stdout {
			if err := formatter.Format(w, result.Diagnostics); err != nil {
				fmt.Fprintf(stderr, "denojsonlint: error writing output: %v\n", err)
				return exitFailed
			}
		}
	}

	for _, e := range result.Errors {
		fmt.Fprintf(stderr, "denojsonlint: %v\n", e)
	}
	if len(result.Errors) > 0 {
		return exitFailed
	}
	if result.HasErrors() {
		return exitErrors
	}
	return exitClean
}

// splitTarget turns the path argument into the directory served as the
// loader's file system, the display prefix, and the path within it.
func splitTarget(target string) (root, base, name string) {
	if target == "" {
		return ".", "", "."
	}
	clean := filepath.Clean(target)
	if info, err := os.Stat(clean); err == nil && info.IsDir() {
		return clean, displayBase(clean), "."
	}
	dir := filepath.Dir(clean)
	return dir, displayBase(dir), filepath.Base(clean)
}

func displayBase(dir string) string {
	if dir == "." {
		return ""
	}
	return dir
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from dir, the directory of the document
// being linted, upwards. It returns nil when there is no config file.
func loadConfig(configPath, dir string, logger *log.Logger) (*config.Config, error) {
	if configPath != "" {
		logger.Printf("config: %s", configPath)
		return config.Load(configPath)
	}

	discovered, err := config.Discover(dir)
	if err != nil || discovered == "" {
		return nil, nil
	}

	logger.Printf("config: %s", discovered)
	return config.Load(discovered)
}

const helpUsageText = `Usage: denojsonlint help <topic>

Topics:
  rule [id]   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return exitClean
	}

	switch args[0] {
	case "rule":
		return runHelpRule(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "denojsonlint: help: unknown topic %q\n", args[0])
		return exitFailed
	}
}

// runHelpRule implements "help rule [id]".
func runHelpRule(args []string) int {
	if len(args) == 0 {
		return listAllRules()
	}
	return showRule(args[0])
}

func listAllRules() int {
	infos, err := rules.ListRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "denojsonlint: %v\n", err)
		return exitFailed
	}

	for _, r := range infos {
		fmt.Printf("%-32s %s\n", r.ID, r.Description)
	}
	return exitClean
}

func showRule(id string) int {
	content, err := rules.LookupRule(id)
	if err != nil {
		if suggestErr := config.CheckRuleIDs([]string{id}, rule.IDs()); suggestErr != nil {
			err = suggestErr
		}
		fmt.Fprintf(os.Stderr, "denojsonlint: %v\n", err)
		return exitFailed
	}
	fmt.Print(content)
	return exitClean
}

// runDocs implements the "docs" subcommand.
func runDocs(args []string) int {
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	var outPath string
	fs.StringVarP(&outPath, "output", "o", "", "Write to this file instead of stdout")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: denojsonlint docs [-o file]\n\n"+
			"Print the rule reference as Markdown.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitClean
		}
		return exitFailed
	}

	md, err := rules.Markdown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "denojsonlint: %v\n", err)
		return exitFailed
	}
	if outPath == "" {
		fmt.Print(md)
		return exitClean
	}
	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "denojsonlint: writing %s: %v\n", outPath, err)
		return exitFailed
	}
	return exitClean
}
