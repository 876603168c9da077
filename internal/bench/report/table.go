package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/fieldbench/internal/bench/runner"
)

const rule = "----------------------------------------------------"

// TrialPrinter streams one line per trial, opening each run with a
// "--- Run N ---" banner.
type TrialPrinter struct {
	w       io.Writer
	lastRun int
}

func NewTrialPrinter(w io.Writer) *TrialPrinter {
	return &TrialPrinter{w: w}
}

func (p *TrialPrinter) Print(tr runner.TrialResult) {
	if tr.Run != p.lastRun {
		fmt.Fprintf(p.w, "--- Run %d ---\n", tr.Run)
		p.lastRun = tr.Run
	}
	WriteTrialLine(p.w, tr)
}

func WriteTrialLine(w io.Writer, tr runner.TrialResult) {
	fmt.Fprintf(w, "  %-18s | Threads: %d | Time: %8.2f ms\n", tr.Scenario, tr.Threads, tr.ElapsedMillis())
}

// WriteTable prints the per-scenario mean elapsed time for every worker
// count, in milliseconds.
func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, rule)

	header := []string{"Scenario / Threads"}
	for _, t := range r.Config.Threads {
		header = append(header, threadsLabel(t))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, sa := range r.Averages {
		row := []string{sa.Scenario}
		for _, c := range sa.Cells {
			row = append(row, fmt.Sprintf("%.2f", c.MeanMs))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
	fmt.Fprintln(w, rule)
}

// WriteOpLatency prints the per-op latency percentiles of every trial that
// recorded them. Nothing is printed when none did.
func WriteOpLatency(r *Report, w io.Writer) {
	var rows []TrialEntry
	for _, e := range r.Trials {
		if e.OpLatency != nil {
			rows = append(rows, e)
		}
	}
	if len(rows) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\nPer-op latency\n\n")
	fmt.Fprintln(tw, "Run\tScenario\tThreads\tOps\tp50\tp90\tp99\tMax")
	fmt.Fprintln(tw, "---\t---\t---\t---\t---\t---\t---\t---")
	for _, e := range rows {
		l := e.OpLatency
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			e.Run, e.Scenario, e.Threads, l.Count, l.P50, l.P90, l.P99, l.Max)
	}
	tw.Flush()
}

func threadsLabel(n int) string {
	if n == 1 {
		return "1 Thread"
	}
	return fmt.Sprintf("%d Threads", n)
}
