// Package export serializes benchmark results for external analysis.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/moguls753/microbench"
)

// Write streams results as CSV with the header
// name,median,mean,stddev,cv,min,max,sample_0,sample_1,...
// The sample columns are sized to the widest result; shorter rows are
// padded with empty fields.
func Write(w io.Writer, results []microbench.Result) error {
	writer := csv.NewWriter(w)

	widest := lo.Max(lo.Map(results, func(r microbench.Result, _ int) int {
		return len(r.Samples())
	}))

	header := []string{"name", "median", "mean", "stddev", "cv", "min", "max"}
	header = append(header, lo.Map(lo.Range(widest), func(i int, _ int) string {
		return fmt.Sprintf("sample_%d", i)
	})...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range results {
		s := r.Summary()
		row := []string{
			r.Name(),
			fmt.Sprintf("%.6f", s.Median),
			fmt.Sprintf("%.6f", s.Mean),
			fmt.Sprintf("%.6f", s.StdDev),
			fmt.Sprintf("%.6f", s.CV.Percent()),
			fmt.Sprintf("%.6f", s.Min),
			fmt.Sprintf("%.6f", s.Max),
		}
		row = append(row, lo.Map(r.Samples(), func(v float64, _ int) string {
			return fmt.Sprintf("%.6f", v)
		})...)

		// Pad rows shorter than the widest result.
		for len(row) < len(header) {
			row = append(row, "")
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.Name(), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Results renders the CSV to a string.
func Results(results []microbench.Result) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, results); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Save writes the CSV to a file at path.
func Save(path string, results []microbench.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	return Write(file, results)
}
