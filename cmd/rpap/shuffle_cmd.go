package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sidepunch/rpap/internal/deck"
	"github.com/sidepunch/rpap/internal/logging"
)

func newShuffleCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle [FILE]",
		Short: "Shuffle rows and print them without the presenter",
		Long: `Reads tab-separated rows from FILE (or --input, or stdin), drops blank
lines, shuffles them and prints one row per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			logger, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level, Verbose: f.verbose})
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			path := f.inputPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = "-"
			}
			raw, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			d, ok := deck.Parse(raw)
			if !ok {
				return fmt.Errorf("%s: no rows to shuffle", path)
			}
			deck.NewShuffler(cfg.Shuffle.Seed, shuffleMode(cfg)).Shuffle(d)
			logger.Info("deck shuffled",
				zap.Int("deck_size", d.Len()),
				zap.String("deck", deck.Fingerprint(d)),
				zap.Stringer("shuffle", shuffleMode(cfg)),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), d.String())
			return err
		},
	}
}
