package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"crosswalk/internal/controls"
	"crosswalk/internal/layout"
	"crosswalk/internal/report"
	"crosswalk/internal/settings"
	"crosswalk/internal/sheet"
	"crosswalk/internal/source"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "generate",
		short: "Build the baseline comparison report",
		usage: "crosswalk generate [-config path] [-input file] [-o dir]",
		long: `Fetch the FedRAMP baseline workbook (or open a local copy), merge the
High, Moderate and Low baseline tabs, and write index.html plus
style.css to the output directory.

Flags:
  -config path   settings file (default crosswalk.yaml)
  -input file    local workbook instead of downloading
  -o dir         output directory (overrides settings)
`,
		run: runGenerate,
	},
	{
		name:  "tabs",
		short: "List workbook tabs and their baseline mapping",
		usage: "crosswalk tabs [-config path] [-input file]",
		long: `Open the workbook and list its worksheet tabs, marking the ones that
map to a configured baseline. Useful when a new workbook revision
renames its tabs.
`,
		run: runTabs,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "crosswalk — FedRAMP baseline comparison report generator\n\n")
	fmt.Fprintf(w, "Usage:\n  crosswalk <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'crosswalk help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "crosswalk: unknown command %q\n\nRun 'crosswalk help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'crosswalk help' for usage.", args[0])
}

// openWorkbook resolves settings and opens the workbook from, in order of
// preference: the -input flag, the settings file entry, the source URL.
func openWorkbook(cfg settings.Resolved, input string) (*sheet.Workbook, error) {
	switch {
	case input != "":
		return source.Open(input)
	case cfg.File != "":
		return source.Open(cfg.File)
	default:
		fmt.Fprintf(os.Stderr, "fetching %s\n", cfg.URL)
		return source.Fetch(context.Background(), cfg.URL)
	}
}

// ---------------------------------------------------------------------------
// generate
// ---------------------------------------------------------------------------

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	configPath := fs.String("config", "crosswalk.yaml", "settings file")
	input := fs.String("input", "", "local workbook file")
	outDir := fs.String("o", "", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := settings.Load(*configPath)
	if err != nil {
		return err
	}
	cfg := s.Resolve()
	if *outDir != "" {
		cfg.Dir = *outDir
	}

	wb, err := openWorkbook(cfg, *input)
	if err != nil {
		return err
	}
	defer wb.Close()

	perBaseline := source.LoadBaselines(wb, cfg.Tabs, os.Stderr)
	if len(perBaseline) == 0 {
		return fmt.Errorf("no baseline tabs found in workbook")
	}
	merged := controls.Merge(perBaseline)

	page := report.GeneratePage(cfg.Title, []report.View{
		{ID: "all", Label: "All controls", Checked: true,
			Rows: layout.Tabulate(merged)},
		{ID: "high-moderate", Label: "High-Moderate",
			Rows: layout.Tabulate(merged.WithoutBaseline(controls.Low))},
		{ID: "moderate-low", Label: "Moderate-Low",
			Rows: layout.Tabulate(merged.WithoutBaseline(controls.High))},
	})
	if err := report.WriteReport(cfg.Dir, page); err != nil {
		return err
	}
	fmt.Printf("wrote %d controls → %s\n", merged.Len(), filepath.Join(cfg.Dir, "index.html"))
	return nil
}

// ---------------------------------------------------------------------------
// tabs
// ---------------------------------------------------------------------------

func runTabs(args []string) error {
	fs := flag.NewFlagSet("tabs", flag.ContinueOnError)
	configPath := fs.String("config", "crosswalk.yaml", "settings file")
	input := fs.String("input", "", "local workbook file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := settings.Load(*configPath)
	if err != nil {
		return err
	}
	cfg := s.Resolve()

	wb, err := openWorkbook(cfg, *input)
	if err != nil {
		return err
	}
	defer wb.Close()

	byTab := make(map[string]controls.Baseline, len(cfg.Tabs))
	for b, name := range cfg.Tabs {
		byTab[name] = b
	}
	for _, name := range wb.TabNames() {
		if b, ok := byTab[name]; ok {
			fmt.Printf("%-40s → %s\n", name, b.Short())
		} else {
			fmt.Printf("%-40s   (unmapped)\n", name)
		}
	}
	return nil
}

func main() {
	if err := dispatch(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
