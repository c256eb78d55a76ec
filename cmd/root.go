package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/olympus/internal/config"
	"github.com/abhisek/olympus/internal/logging"
	"github.com/abhisek/olympus/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "olympus",
	Short: "Workout progress tracker with mythic rewards",
	Long: "Olympus tracks training cycles, weekly streaks and ruck mileage along the\n" +
		"Pheidippides route, awarding trophies, laurels and way-point postcards.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var (
	cfg       config.Config
	logCloser io.Closer
)

func Execute() error {
	defer func() {
		if logCloser != nil {
			logCloser.Close()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides OLYMPUS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default $XDG_CONFIG_HOME/olympus/config.toml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(badgesCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and configures logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.LogLevel = lvl
		if err := c.Validate(); err != nil {
			return err
		}
	}
	cfg = c

	if logCloser != nil {
		logCloser.Close()
	}
	logCloser = logging.Setup(logging.SetupParams{
		LogFileName:   cfg.LogFile,
		LogToStderr:   cfg.LogToStderr,
		LogLevel:      cfg.LogLevel,
		LogFormatJSON: cfg.LogJSON,
	})
	logrus.WithField("config", path).Debug("configuration loaded")
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then OLYMPUS_DB or the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	p, err := store.DefaultDBPath()
	if err != nil {
		return "", fmt.Errorf("resolve DB path: %w", err)
	}
	return p, nil
}
