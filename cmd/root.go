package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemforge/internal/oracle"
	"github.com/abhisek/itemforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "itemforge",
	Short: "Quiz item set generation pipeline",
	Long:  "Itemforge turns a structured creation request into a validated quiz item set through a generation, evaluation and refinement pipeline.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ITEMFORGE_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ITEMFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store. Callers own the returned Store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newProvider builds the configured oracle provider. events may be nil.
func newProvider(ctx context.Context, events store.EventRepo) (oracle.Provider, error) {
	cfg := oracle.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("oracle configuration: %w", err)
	}
	return oracle.NewProvider(ctx, cfg, events)
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
