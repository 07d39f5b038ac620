package cmd

import (
	"github.com/soltrack/soltrack/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soltrack",
	Short: "Standards catalog, assessment and mastery engine",
	Long:  "Soltrack ingests curriculum standards documents, generates aligned assessment items, scores submissions, and tracks per-standard mastery.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOLTRACK_DB env var)")

	rootCmd.AddCommand(standardsCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then SOLTRACK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the path and opens the backing store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
