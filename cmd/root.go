package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/sqlskills/internal/config"
	"github.com/abhisek/sqlskills/internal/logging"
)

var (
	cfg    *config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "sqlskills",
	Short: "Track SQL skill mastery",
	Long: "sqlskills tracks progress across a graph of SQL skills: per-skill scores, " +
		"weighted proficiency, badges, weekly decay and practice session summaries.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default $XDG_CONFIG_HOME/sqlskills/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SQLSKILLS_DB env var)")
	rootCmd.PersistentFlags().String("backend", "", "Progress backend: sqlite or file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies flag overrides, which win
// over both the file and SQLSKILLS_* variables.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		c.Store.DBPath = p
	}
	if b, _ := cmd.Flags().GetString("backend"); b != "" {
		c.Store.Backend = b
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		c.Log.Level = l
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(c.Log, os.Stderr)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	return nil
}
