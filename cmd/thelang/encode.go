package main

import (
	"fmt"
	"strings"

	"github.com/example/thelang/internal/text"
	"github.com/example/thelang/internal/translit"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var discord bool
	var perSentence bool

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Translate English text to The",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			input, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			enc, err := translit.NewEncoder(
				translit.WithCacheSize(cfg.Engine.CacheSize),
			)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), encodeInput(enc, input, perSentence, discord))
			return err
		},
	}

	cmd.Flags().BoolVar(&discord, "discord", false, "Append the English source as a Discord subtext line")
	cmd.Flags().BoolVar(&perSentence, "per-sentence", false, "Print each translated sentence on its own line")

	return cmd
}

func encodeInput(enc *translit.Encoder, input string, perSentence, discord bool) string {
	var out string
	if perSentence {
		sentences := text.Sentences(input)
		for i, s := range sentences {
			sentences[i] = enc.EncodeText(s)
		}
		out = strings.Join(sentences, "\n")
	} else {
		out = enc.EncodeText(input)
	}

	if discord {
		out = text.DiscordCopy(out, input)
	}
	return out
}
