package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/letterz/internal/config"
	"github.com/abhisek/letterz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "letterz",
	Short: "Letter recognition game for kids",
	Long:  "Letterz is a terminal game that teaches children to recognize the letters A-Z with spaced repetition.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LETTERZ_DB env var)")
	rootCmd.PersistentFlags().String("backend", "", "Deck storage: sqlite, bolt, redis or memory (overrides LETTERZ_BACKEND)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if b, _ := cmd.Flags().GetString("backend"); b != "" {
		cfg.Backend = strings.ToLower(strings.TrimSpace(b))
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LETTERZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
