package coach

import (
	"fmt"
	"os"

	"github.com/saadjs/coach-cli/internal/config"
	"github.com/saadjs/coach-cli/internal/logger"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	verbose    bool

	cfg    *config.Config
	appLog *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "coach plans phases, macros and weekly reviews for a cutting program",
	Long:  "coach is a local-first nutrition coach: it resolves the current program phase, derives daily macro targets, logs meals and body weight, and writes weekly reports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose {
			appLog = logger.NewDevelopment()
			return nil
		}
		l, err := logger.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		appLog = l
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	defer func() {
		if appLog != nil {
			_ = appLog.Sync()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to coach.yaml config file")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log debug output to stderr")
}

func logr() *logger.Logger {
	if appLog == nil {
		return logger.NewNop()
	}
	return appLog
}
