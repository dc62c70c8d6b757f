package main

import (
	"fmt"
	"log/slog"

	"github.com/example/thelang/internal/translit"
	"github.com/spf13/cobra"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text...]",
		Short: "Translate The text back to English using the dictionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			store, err := openStore(cfg)
			if err != nil {
				return err
			}

			ix := store.Index()
			slog.Debug("reverse index ready",
				slog.Int("words", ix.Words()),
				slog.Int("collisions", ix.Collisions()),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), translit.DecodeText(input, ix))
			return err
		},
	}
}
