// Command rpap shuffles pasted rows and presents them one card at a time.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sidepunch/rpap/internal/config"
	"github.com/sidepunch/rpap/internal/deck"
	"github.com/sidepunch/rpap/internal/logging"
)

var version = "dev"

type flags struct {
	configPath string
	inputPath  string
	watch      bool
	seed       int64
	uniform    bool
	fullscreen bool
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "rpap",
		Short: "Random Pick and Presenter",
		Long: `rpap shuffles rows of tab-separated text and presents them one card
at a time in a full-screen terminal view.

Paste cells copied from a spreadsheet, press ctrl+s to shuffle, then enter
to step through the cards.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rpap/config.yaml)")
	pf.StringVarP(&f.inputPath, "input", "i", "", "read rows from FILE ('-' for stdin)")
	pf.Int64Var(&f.seed, "seed", 0, "shuffle seed (0 = random)")
	pf.BoolVar(&f.uniform, "uniform", false, "use an unbiased Fisher-Yates shuffle")
	pf.StringVar(&f.logFile, "log-file", "", "write JSON logs to FILE")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.Flags().BoolVarP(&f.watch, "watch", "w", false, "reload --input when the file changes")
	root.Flags().BoolVarP(&f.fullscreen, "fullscreen", "f", false, "start in full-screen presenter mode")

	root.AddCommand(newShuffleCmd(f), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rpap", version)
		},
	}
}

// loadConfig resolves file, environment and flag settings, in that order.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Shuffle.Seed = f.seed
	}
	if changed("uniform") {
		cfg.Shuffle.Uniform = f.uniform
	}
	if changed("fullscreen") {
		cfg.UI.Fullscreen = f.fullscreen
	}
	if changed("log-file") {
		cfg.Log.File = f.logFile
	}
	return cfg, nil
}

func shuffleMode(cfg *config.Config) deck.Mode {
	if cfg.Shuffle.Uniform {
		return deck.ModeUniform
	}
	return deck.ModeLegacy
}

func runInteractive(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	if f.watch && (f.inputPath == "" || f.inputPath == "-") {
		return errors.New("--watch needs --input FILE")
	}

	logger, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level, Verbose: f.verbose})
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	input := cfg.Sample
	if f.inputPath != "" {
		if input, err = readInput(f.inputPath, cmd.InOrStdin()); err != nil {
			return err
		}
	}

	interval, err := cfg.AnimationInterval()
	if err != nil {
		return err
	}

	m := newModel(modelOptions{
		Input:      input,
		Shuffler:   deck.NewShuffler(cfg.Shuffle.Seed, shuffleMode(cfg)),
		Logger:     logger,
		Theme:      cfg.UI.Theme,
		Fullscreen: cfg.UI.Fullscreen,
		AnimFrames: cfg.UI.AnimationFrames,
		AnimEvery:  interval,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	opts := []tea.ProgramOption{tea.WithContext(gctx)}
	if cfg.UI.Fullscreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if f.inputPath == "-" {
		// stdin carried the rows; keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, opts...)

	logger.Info("starting",
		zap.String("version", version),
		zap.Stringer("shuffle", shuffleMode(cfg)),
		zap.Bool("watch", f.watch),
	)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	if f.watch {
		g.Go(func() error {
			return newInputWatcher(f.inputPath, p.Send, logger).Run(gctx)
		})
	}

	err = g.Wait()
	logger.Info("stopped", zap.Error(err))
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
