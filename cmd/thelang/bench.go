package main

import (
	"fmt"
	"strings"

	"github.com/example/thelang/internal/bench"
	"github.com/example/thelang/internal/config"
	"github.com/example/thelang/internal/translit"
	"github.com/example/thelang/internal/vocab"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		text   string
		runs   int
		format string
		minWPS float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark encode and decode throughput",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("--text must not be empty")
			}
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1")
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}

			results, err := runBench(cfg, text, runs)
			if err != nil {
				return err
			}

			stats := bench.ComputeStats(bench.Durations(results))

			switch format {
			case "json":
				bench.FormatJSON(results, stats, cmd.OutOrStdout())
			default:
				bench.FormatTable(results, stats, cmd.OutOrStdout())
			}

			return bench.CheckThroughput(bench.MeanThroughput(results), minWPS)
		},
	}

	cmd.Flags().StringVar(&text, "text", strings.Join(vocab.DefaultSeed, " ")+".", "Text to encode and decode on each run")
	cmd.Flags().IntVar(&runs, "runs", 5, "Number of runs")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	cmd.Flags().Float64Var(&minWPS, "min-wps", 0, "Exit non-zero if mean words/s is below this value (0 = disabled)")

	return cmd
}

// runBench encodes text and decodes it back against the configured
// dictionary on every run. The encoder and index are shared across runs,
// so the first run pays for the cold encode cache and the index build.
func runBench(cfg config.Config, text string, runs int) ([]bench.RunResult, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	enc := store.Encoder()

	var words int
	for _, seg := range translit.Segments(text) {
		if seg.Kind == translit.Word {
			words++
		}
	}

	return bench.Run(runs, func(int) (int, error) {
		encoded := enc.EncodeText(text)
		_ = translit.DecodeText(encoded, store.Index())
		return 2 * words, nil
	})
}
