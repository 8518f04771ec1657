package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"modcheck/internal/classify"
	"modcheck/internal/conflict"
)

// Render writes the classified mod table and scan summary to w. It has
// no side effects beyond writing; color is applied only when w is a
// terminal.
func Render(w io.Writer, records []classify.Record, sum conflict.Summary) {
	colorize := shouldColorize(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No mods found.")
		return
	}

	sorted := make([]classify.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(a, b int) bool {
		an := strings.ToLower(sorted[a].DisplayName)
		bn := strings.ToLower(sorted[b].DisplayName)
		if an != bn {
			return an < bn
		}
		return sorted[a].FilePath < sorted[b].FilePath
	})

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Mod Name", "Type", "Version", "Status"})
	for _, rec := range sorted {
		version := rec.Version
		if version == "" {
			version = "?"
		}
		tw.AppendRow(table.Row{rec.DisplayName, rec.Loader.String(), version, statusCell(rec, colorize)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintln(w, tw.Render())

	renderSummary(w, sum, colorize)
}

func renderSummary(w io.Writer, sum conflict.Summary, colorize bool) {
	if sum.HasDominant {
		line := fmt.Sprintf("Dominant loader: %s", sum.Dominant)
		fmt.Fprintln(w, paint(line, text.Colors{text.FgCyan}, colorize))
	} else {
		fmt.Fprintln(w, "Dominant loader: undefined (no mod declared a known loader)")
	}

	var counts []string
	for _, loader := range classify.Loaders() {
		if n := sum.Counts[loader]; n > 0 {
			counts = append(counts, fmt.Sprintf("%s: %d", loader, n))
		}
	}
	if len(counts) > 0 {
		fmt.Fprintln(w, "Loader counts: "+strings.Join(counts, ", "))
	}

	if n := len(sum.MinorityPaths); n > 0 {
		line := fmt.Sprintf("Mixed loaders detected: %d %s not targeting %s", n, pluralMod(n), sum.Dominant)
		fmt.Fprintln(w, paint(line, text.Colors{text.FgYellow}, colorize))
	} else if sum.HasDominant {
		fmt.Fprintln(w, paint("All mods target the same loader.", text.Colors{text.FgGreen}, colorize))
	}

	for _, group := range sum.DuplicateGroups {
		line := fmt.Sprintf("Duplicate: %s (%d files)", group.Name, len(group.Paths))
		fmt.Fprintln(w, paint(line, text.Colors{text.FgYellow}, colorize))
	}
}

func statusCell(rec classify.Record, colorize bool) string {
	var label string
	var colors text.Colors
	switch rec.Status {
	case classify.StatusDuplicate:
		label = "⚠ duplicate"
		colors = text.Colors{text.FgYellow}
	case classify.StatusMixedLoader:
		label = "✖ mixed loader"
		colors = text.Colors{text.FgRed}
	case classify.StatusMissingDependency:
		label = "⚠ missing: " + strings.Join(rec.MissingDeps, ", ")
		colors = text.Colors{text.FgMagenta}
	default:
		label = "✔ OK"
		colors = text.Colors{text.FgGreen}
	}
	if rec.IsCoreLibrary {
		label += " (core library)"
	}
	return paint(label, colors, colorize)
}

func paint(s string, colors text.Colors, colorize bool) string {
	if !colorize {
		return s
	}
	return colors.Sprint(s)
}

func pluralMod(n int) string {
	if n == 1 {
		return "mod is"
	}
	return "mods are"
}

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
