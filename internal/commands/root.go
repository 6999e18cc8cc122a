package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/store"
	"github.com/fintrack-dev/fintrack/internal/ui"
)

// NewRootCommand creates the root CLI command. Running it with no arguments
// starts the interactive menu loop.
func NewRootCommand() *cobra.Command {
	var debug bool
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Console personal finance tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(configPath, debug)
		},
	}

	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug features (random transactions)")
	rootCmd.Flags().StringVar(&configPath, "config", "fintrack.yaml", "configuration file")

	return rootCmd
}

func runApp(configPath string, debug bool) error {
	opts, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(logrus.DebugLevel)
	}

	st, err := store.Open(opts, log)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	app := ui.NewApp(ui.AppParams{
		Options: opts,
		Store:   st,
		Prompt:  ui.HuhPrompter{},
		Log:     log,
		Debug:   debug,
	})
	return app.Run()
}
