// Package report renders import results for the command line tools.
package report

import (
	"fmt"
	"io"
	"time"

	"ukpostcodes/internal/model"
)

// Write prints one line per rejected entry followed by the summary. label
// names the position unit, e.g. "Line" for CSV files or "Row" for tables.
func Write(w io.Writer, r *model.ImportReport, label string) {
	for _, e := range r.Rejected {
		fmt.Fprintf(w, "  Invalid %s %d: '%s' -> '%s' (%s)\n", label, e.Position, e.Raw, e.Normalized, e.Reason)
	}
	fmt.Fprintln(w, r.Summary())
}

// WriteHistory prints previous runs, one per line, in the order given.
func WriteHistory(w io.Writer, source string, runs []model.ImportRun) {
	fmt.Fprintf(w, "Previous runs for %s:\n", source)
	if len(runs) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, run := range runs {
		fmt.Fprintf(w, "  %s  %s  Valid: %d | Invalid: %d\n",
			run.StartedAt.UTC().Format(time.RFC3339), run.ID, run.ValidCount, run.InvalidCount)
	}
}
