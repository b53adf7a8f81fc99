// Package report renders a markdown summary of an experiment run and
// converts it to HTML for the API surface.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"seedhash/domain/experiment"
)

// Markdown builds a markdown report for an experiment: identity,
// sampling/task breakdowns and per-metric statistics.
func Markdown(name string, masterSeed int64, summary experiment.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Experiment Report: %s\n\n", name)
	fmt.Fprintf(&b, "- Master seed: `%d`\n", masterSeed)
	fmt.Fprintf(&b, "- Total experiments: %d\n\n", summary.TotalExperiments)

	writeCountSection(&b, "Sampling Methods", summary.Methods)
	writeCountSection(&b, "ML Tasks", summary.Tasks)

	if len(summary.SeedLevels) > 0 {
		b.WriteString("## Seed Levels\n\n")
		levels := make([]int, 0, len(summary.SeedLevels))
		for level := range summary.SeedLevels {
			levels = append(levels, level)
		}
		sort.Ints(levels)
		for _, level := range levels {
			fmt.Fprintf(&b, "- level %d: %d\n", level, summary.SeedLevels[level])
		}
		b.WriteString("\n")
	}

	if len(summary.Metrics) > 0 {
		b.WriteString("## Metric Statistics\n\n")
		b.WriteString("| Metric | Mean | Std | Min | Max |\n")
		b.WriteString("|--------|------|-----|-----|-----|\n")
		names := make([]string, 0, len(summary.Metrics))
		for name := range summary.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s := summary.Metrics[name]
			fmt.Fprintf(&b, "| %s | %.4f | %.4f | %.4f | %.4f |\n", name, s.Mean, s.StdDev, s.Min, s.Max)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeCountSection(b *strings.Builder, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, "- %s: %d\n", k, counts[k])
	}
	b.WriteString("\n")
}

// HTML renders a markdown report to an HTML fragment.
func HTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
