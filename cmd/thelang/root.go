package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/thelang/internal/config"
	"github.com/example/thelang/internal/server"
	"github.com/example/thelang/internal/text"
	"github.com/example/thelang/internal/translit"
	"github.com/example/thelang/internal/vocab"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	activeCfg config.Config
	cfgLoaded bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "thelang",
		Short:         "Translate English to and from The",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			cfgLoaded = true
			setupLogger(loaded.LogLevel)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newEncodeCmd())
	cmd.AddCommand(newDecodeCmd())
	cmd.AddCommand(newWordsCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newBenchCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	lvl, err := server.ParseLogLevel(levelStr)
	if err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

// requireConfig returns the configuration loaded by the root command. An
// empty dictionary path is valid and selects an in-memory dictionary.
func requireConfig() (config.Config, error) {
	if !cfgLoaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

// openStore opens the configured dictionary with an encoder sized from the
// engine settings, seeding it with the common words when vocab.seed is set.
// An empty dictionary path gives a dictionary that lives only in memory.
func openStore(cfg config.Config) (*vocab.Store, error) {
	enc, err := translit.NewEncoder(
		translit.WithCacheSize(cfg.Engine.CacheSize),
		translit.WithBuildWorkers(cfg.Engine.BuildWorkers),
	)
	if err != nil {
		return nil, err
	}

	var store *vocab.Store
	if cfg.Paths.DictPath == "" {
		store = vocab.NewMemory(enc)
	} else if store, err = vocab.Open(cfg.Paths.DictPath, enc); err != nil {
		return nil, err
	}

	if cfg.Vocab.Seed {
		added, err := store.Seed(vocab.DefaultSeed)
		if err != nil {
			return nil, fmt.Errorf("seed dictionary: %w", err)
		}
		if added > 0 {
			slog.Info("dictionary seeded",
				slog.String("path", cfg.Paths.DictPath),
				slog.Int("added", added),
			)
		}
	}

	return store, nil
}

// readInput returns the text to translate: the joined arguments, or stdin
// when there are none.
func readInput(args []string, stdin io.Reader) (string, error) {
	input := strings.Join(args, " ")
	if strings.TrimSpace(input) == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		input = string(b)
	}

	cleaned, err := text.Clean(input)
	if err != nil {
		return "", fmt.Errorf("either pass text as arguments or pipe it on stdin: %w", err)
	}
	return cleaned, nil
}
