// Package display renders benchmark results as plain text. It is a
// pure consumer of the core's Result contract and never feeds
// anything back into measurement.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/moguls753/microbench"
	"github.com/moguls753/microbench/statistics"
)

// ResultsTable writes one row per result with the full statistics
// set, in the order the results were produced.
func ResultsTable(w io.Writer, results []microbench.Result) {
	fmt.Fprintln(w, "┌──────────────────────┬────────────┬────────────┬────────────┬────────────┬────────────┬───────┬───────────┐")
	fmt.Fprintln(w, "│ Variant              │ Median µs  │ Mean µs    │ StdDev     │ Min        │ Max        │ CV %  │ Rating    │")
	fmt.Fprintln(w, "├──────────────────────┼────────────┼────────────┼────────────┼────────────┼────────────┼───────┼───────────┤")

	for _, r := range results {
		s := r.Summary()
		fmt.Fprintf(w, "│ %-20s │ %10.3f │ %10.3f │ %10.3f │ %10.3f │ %10.3f │ %5.1f │ %-9s │\n",
			truncate(r.Name(), 20),
			s.Median,
			s.Mean,
			s.StdDev,
			s.Min,
			s.Max,
			s.CV.Percent(),
			s.Reliability,
		)
	}

	fmt.Fprintln(w, "└──────────────────────┴────────────┴────────────┴────────────┴────────────┴────────────┴───────┴───────────┘")
}

// ComparisonTable compares every result against the first one. With
// fewer than two results there is nothing to compare and nothing is
// written. A result with a zero median is reported instead of
// compared.
func ComparisonTable(w io.Writer, results []microbench.Result) {
	if len(results) < 2 {
		return
	}
	baseline := results[0]

	fmt.Fprintf(w, "\nComparisons (vs %s):\n", baseline.Name())
	fmt.Fprintln(w, "┌──────────────────────┬──────────┬──────────────┬───────────┬───────────┐")
	fmt.Fprintln(w, "│ Variant              │ Speedup  │ Improvement  │ Rating    │ Reliable? │")
	fmt.Fprintln(w, "├──────────────────────┼──────────┼──────────────┼───────────┼───────────┤")

	for _, r := range results[1:] {
		comp, err := microbench.Compare(&baseline, &r)
		if err != nil {
			fmt.Fprintf(w, "│ %-20s │ %-8s │ %-12s │ %-9s │ %-9s │\n",
				truncate(r.Name(), 20), "n/a", "zero median", "-", "-")
			continue
		}

		reliable := "no"
		if comp.IsReliable() {
			reliable = "yes"
		}
		fmt.Fprintf(w, "│ %-20s │ %7.2fx │ %+11.1f%% │ %-9s │ %-9s │\n",
			truncate(r.Name(), 20),
			comp.Speedup,
			comp.Improvement.Percent(),
			comp.Reliability(),
			reliable,
		)
	}

	fmt.Fprintln(w, "└──────────────────────┴──────────┴──────────────┴───────────┴───────────┘")
}

// Verbose writes a multi-line block for a single result, including
// percentiles and the raw sample sequence.
func Verbose(w io.Writer, r microbench.Result) {
	s := r.Summary()
	samples := r.Samples()

	fmt.Fprintln(w, r.Name())
	fmt.Fprintln(w, strings.Repeat("─", len([]rune(r.Name()))))
	fmt.Fprintf(w, "  samples:     %d\n", len(samples))
	fmt.Fprintf(w, "  median:      %.3f µs/op\n", s.Median)
	fmt.Fprintf(w, "  mean:        %.3f µs/op\n", s.Mean)
	fmt.Fprintf(w, "  stddev:      %.3f\n", s.StdDev)
	fmt.Fprintf(w, "  min / max:   %.3f / %.3f\n", s.Min, s.Max)
	fmt.Fprintf(w, "  p90 / p95:   %.3f / %.3f\n",
		statistics.Percentile(samples, 90), statistics.Percentile(samples, 95))
	fmt.Fprintf(w, "  cv:          %s (%s)\n", s.CV, s.Reliability)

	raw := make([]string, len(samples))
	for i, v := range samples {
		raw[i] = fmt.Sprintf("%.3f", v)
	}
	fmt.Fprintf(w, "  raw:         [%s]\n", strings.Join(raw, ", "))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
