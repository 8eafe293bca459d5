package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/moguls753/microbench"
	"github.com/moguls753/microbench/display"
	"github.com/moguls753/microbench/export"
)

var (
	preset     string
	iterations int
	samples    int
	warmup     int
	noShuffle  bool
	seed       int64
	csvPath    string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "microbench [suite]",
	Short: "Compare named code variants with outlier-resistant statistics",
	Long: `microbench times each variant of a suite under a warmup-then-sample
protocol and reports median-based statistics, reliability ratings and
pairwise comparisons against the first variant.

Built-in suites:
  ids      UUID v4 / UUID v7 / ULID generation (default)
  quoting  SQL literal quoting strategies`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	suite := "ids"
	if len(args) == 1 {
		suite = args[0]
	}
	variants, err := suiteVariants(suite)
	if err != nil {
		return err
	}

	cfg, err := presetConfig(preset)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = iterations
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples = samples
	}
	if cmd.Flags().Changed("warmup") {
		cfg.WarmupIterations = warmup
	}
	if noShuffle {
		cfg.RandomizeOrder = false
	}

	opts := []microbench.Option{
		microbench.WithProgress(func(msg string) {
			fmt.Fprintln(os.Stderr, "→ "+msg)
		}),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, microbench.WithSeed(seed))
	}

	bench, err := microbench.New(cfg, variants, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("Suite: %s\n", suite)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Iterations:   %d\n", cfg.Iterations)
	fmt.Printf("Samples:      %d\n", cfg.Samples)
	fmt.Printf("Warmup:       %d\n", cfg.WarmupIterations)
	fmt.Printf("Shuffle:      %t\n", cfg.RandomizeOrder)
	fmt.Println()

	results := bench.Run()

	display.ResultsTable(os.Stdout, results)
	display.ComparisonTable(os.Stdout, results)

	if verbose {
		for _, r := range results {
			fmt.Println()
			display.Verbose(os.Stdout, r)
		}
	}

	if csvPath != "" {
		if err := export.Save(csvPath, results); err != nil {
			return err
		}
		fmt.Printf("\n✓ Results written to %s\n", csvPath)
	}
	return nil
}

func suiteVariants(name string) ([]microbench.Variant, error) {
	switch name {
	case "ids":
		return []microbench.Variant{
			{Name: "uuid-v4", Run: func() { _ = uuid.New() }},
			{Name: "uuid-v7", Run: func() { _, _ = uuid.NewV7() }},
			{Name: "uuid-v4-string", Run: func() { _ = uuid.NewString() }},
			{Name: "ulid", Run: func() { _ = ulid.Make() }},
		}, nil
	case "quoting":
		literal := `O'Reilly & Sons, "Ltd."`
		return []microbench.Variant{
			{Name: "pq-quote-literal", Run: func() { _ = pq.QuoteLiteral(literal) }},
			{Name: "pq-quote-identifier", Run: func() { _ = pq.QuoteIdentifier(literal) }},
			{Name: "strconv-quote", Run: func() { _ = strconv.Quote(literal) }},
			{Name: "strings-replace", Run: func() {
				_ = "'" + strings.ReplaceAll(literal, "'", "''") + "'"
			}},
		}, nil
	}
	return nil, fmt.Errorf("unknown suite %q (available: ids, quoting)", name)
}

func presetConfig(name string) (microbench.Config, error) {
	switch name {
	case "quick":
		return microbench.QuickConfig(), nil
	case "standard":
		return microbench.StandardConfig(), nil
	case "thorough":
		return microbench.ThoroughConfig(), nil
	}
	return microbench.Config{}, fmt.Errorf("unknown preset %q (quick, standard, thorough)", name)
}

func init() {
	rootCmd.Flags().StringVarP(&preset, "preset", "p", "standard", "Preset config (quick, standard, thorough)")
	rootCmd.Flags().IntVarP(&iterations, "iterations", "i", 0, "Operations timed per sample (overrides preset)")
	rootCmd.Flags().IntVarP(&samples, "samples", "s", 0, "Independent samples per variant (overrides preset)")
	rootCmd.Flags().IntVarP(&warmup, "warmup", "w", 0, "Untimed warmup iterations per variant (overrides preset)")
	rootCmd.Flags().BoolVar(&noShuffle, "no-shuffle", false, "Measure variants in declaration order every round")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Fixed shuffle seed for reproducible runs")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Write results to a CSV file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print a per-variant block with percentiles and raw samples")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("microbench: %v", err)
	}
}
