package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/thelang/internal/config"
	"github.com/example/thelang/internal/vocab"
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the dictionary of known words",
	}

	cmd.AddCommand(newWordsListCmd())
	cmd.AddCommand(newWordsAddCmd())
	cmd.AddCommand(newWordsCountCmd())
	cmd.AddCommand(newWordsSeedCmd())
	cmd.AddCommand(newWordsExportCmd())

	return cmd
}

func newWordsListCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dictionary words, sorted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			for _, w := range store.WithPrefix(prefix) {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), w); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list words starting with this prefix")

	return cmd
}

func newWordsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word>...",
		Short: "Add words to the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			var errs []error
			for _, arg := range args {
				word, err := store.Add(arg)
				switch {
				case err == nil:
					slog.Debug("word added", slog.String("word", word))
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", word); err != nil {
						return err
					}
				case errors.Is(err, vocab.ErrDuplicate):
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "exists %s\n", word); err != nil {
						return err
					}
				default:
					errs = append(errs, err)
				}
			}
			return errors.Join(errs...)
		},
	}
}

func newWordsCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of dictionary words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Count())
			return err
		},
	}
}

func newWordsSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add the built-in common words to the dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			cfg.Vocab.Seed = false

			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			added, err := store.Seed(vocab.DefaultSeed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d words (%d total)\n", added, store.Count())
			return err
		},
	}
}

func newWordsExportCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every dictionary word with its The form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Vocab.ExportFormat
			}
			format, err = config.NormalizeExportFormat(format)
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Paths.ExportPath
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			if output == "-" {
				return store.Export(cmd.OutOrStdout(), format)
			}
			if err := store.ExportFile(output, format); err != nil {
				return err
			}

			slog.Info("dictionary exported",
				slog.String("path", output),
				slog.String("format", format),
				slog.Int("words", store.Count()),
			)
			_, err = fmt.Fprintf(os.Stderr, "wrote %d words to %s\n", store.Count(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Export format (text|yaml); defaults to vocab.export_format")
	cmd.Flags().StringVar(&output, "output", "", "Output path ('-' for stdout); defaults to paths.export_path")

	return cmd
}
