package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	bumpver "bumpver/pkg"
)

// printSummary renders the per-file outcome of a bump run as a table on
// stdout. Runs that failed before touching any file produce no table.
func printSummary(meta bumpver.BumpMeta, dry bool) {
	if len(meta.Results) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Shape", "Replacements", "Status"})
	for _, r := range meta.Results {
		status := "updated"
		switch {
		case r.Err != nil:
			status = "failed: " + r.Err.Error()
		case r.Replacements == 0:
			status = "unchanged"
		case dry:
			status = "would update"
		}
		t.AppendRow(table.Row{r.Path, r.Shape.String(), r.Replacements, status})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
