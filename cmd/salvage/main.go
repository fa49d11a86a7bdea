// Command salvage prints the reward range of every SALV_*.asset file in a
// directory, one line per asset:
//
//	SALV_CopperWire: 5 - 8 / kg
//	SALV_Bolt: 10 / ea
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"salvage/internal/config"
	"salvage/internal/logging"
	"salvage/internal/salvage"
	"salvage/internal/watch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1"

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "salvage <salvage_data_path>",
		Short:   "Summarize salvage reward assets",
		Version: version,
		Long: `Reads every SALV_*.asset file directly inside the given folder and prints
the awarded value of each one:

  NAME: MIN / ea          counted reward with a fixed value
  NAME: MIN - MAX / kg    mass based reward with a value range

Any unreadable or malformed asset aborts the run before anything is printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Initialize(cfg.LogLevel())
			logger.Named(string(logging.CategoryBoot)).Debug("logger initialized",
				zap.Int("verbosity", cfg.Verbosity),
				zap.Stringer("level", cfg.LogLevel()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Root = args[0]
			return runSalvage(cmd, cfg)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.Flags().CountVarP(&cfg.Verbosity, "verbose", "v", "A level of verbosity, and can be used multiple times")
	cmd.Flags().BoolVarP(&cfg.Watch, "watch", "w", false, "Keep running and reprint when assets change")
	cmd.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "Quiet period before rescanning in watch mode")

	return cmd
}

func runSalvage(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	discoverer, err := salvage.NewDiscoverer(salvage.DefaultPattern, logging.Get(logging.CategoryDiscover))
	if err != nil {
		return fmt.Errorf("failed to parse glob string: %w", err)
	}
	scanner := salvage.NewScanner(
		discoverer,
		salvage.NewExtractor(logging.Get(logging.CategoryExtract)),
		logging.Get(logging.CategoryScan),
	)
	out := cmd.OutOrStdout()

	if !cfg.Watch {
		return scanner.Run(cfg.Root, out)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := watch.New(cfg.Root, discoverer.Pattern(), cfg.Debounce, logging.Get(logging.CategoryWatch))
	if err != nil {
		return err
	}
	return watcher.Run(ctx, func() error {
		return scanner.Run(cfg.Root, out)
	})
}

func main() {
	if err := newRootCmd(config.DefaultConfig()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
