package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/napolitain/solver-geode/internal/loader"
	"github.com/napolitain/solver-geode/internal/models"
	"github.com/napolitain/solver-geode/internal/solver/search"
)

func (r *run) banner(subtitle string) {
	if r.quiet {
		return
	}
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Fprintln(r.out, "\n╭───────────────────────────╮")
	titleColor.Fprintln(r.out, "│  Geode Production         │")
	titleColor.Fprintln(r.out, "│  Optimizer                │")
	titleColor.Fprintln(r.out, "╰───────────────────────────╯")
	fmt.Fprintln(r.out)
	infoColor.Fprintf(r.out, "📦 Loaded %d blueprints (%d workers)\n", len(r.blueprints), r.cfg.Search.Workers)
	infoColor.Fprintf(r.out, "🔄 %s\n\n", subtitle)
}

func printResults(w io.Writer, results []search.Result) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Blueprint", "Minutes", "Geodes", "Quality", "Expanded", "Dominated", "Bounded", "Frontier", "Complete"}),
	)

	for _, r := range results {
		complete := "yes"
		if !r.Exhausted {
			complete = "capped"
		}
		row := []string{
			fmt.Sprintf("%d", r.BlueprintID),
			fmt.Sprintf("%d", r.Horizon),
			fmt.Sprintf("%d", r.Geodes),
			fmt.Sprintf("%d", r.Quality()),
			fmt.Sprintf("%d", r.Stats.Expanded),
			fmt.Sprintf("%d", r.Stats.Dominated),
			fmt.Sprintf("%d", r.Stats.Bounded),
			fmt.Sprintf("%d", r.Stats.MaxFrontier),
			complete,
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}

func printAnswer(w io.Writer, label string, answer int, results []search.Result) {
	successColor := color.New(color.FgGreen, color.Bold)
	warnColor := color.New(color.FgYellow)

	expanded := 0
	for _, r := range results {
		expanded += r.Stats.Expanded
		if !r.Exhausted {
			warnColor.Fprintf(w, "⚠️  Blueprint %d hit the expansion cap; its score is a lower bound\n", r.BlueprintID)
		}
	}

	fmt.Fprintf(w, "\n🔍 Expanded %d states\n", expanded)
	successColor.Fprintf(w, "✓ %s: %d\n", capitalize(label), answer)
}

func writeBlueprints(w io.Writer, blueprints []models.Blueprint, format string) error {
	switch strings.ToLower(format) {
	case "text", "txt":
		for _, bp := range blueprints {
			if _, err := fmt.Fprintln(w, bp.String()); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(loader.ToJSON(blueprints))
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(loader.ToJSON(blueprints)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
