package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/bank"
	"github.com/abhisek/quizforge/internal/standards"
	"github.com/abhisek/quizforge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "AI quiz generator for curriculum standards",
	Long:  "QuizForge — terminal tool that assesses curriculum standards for text-based testing and generates validated quiz questions with an LLM.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A missing .env is fine; provider keys may already be in the
	// environment.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("standards", "", "Path to the structured standards JSON file (overrides QUIZFORGE_STANDARDS env var)")
	rootCmd.PersistentFlags().String("bank", "question_bank.json", "Path to the question bank file, loaded when present")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite request log database (overrides QUIZFORGE_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZFORGE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStandardsPath returns the standards file path using the
// --standards flag, then the QUIZFORGE_STANDARDS env var.
func resolveStandardsPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("standards"); p != "" {
		return p, nil
	}
	if p := os.Getenv("QUIZFORGE_STANDARDS"); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no standards file: pass --standards or set QUIZFORGE_STANDARDS")
}

// loadCollection loads the standards documents for this invocation.
func loadCollection(cmd *cobra.Command) (*standards.Collection, error) {
	path, err := resolveStandardsPath(cmd)
	if err != nil {
		return nil, err
	}
	coll, err := standards.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load standards: %w", err)
	}
	return coll, nil
}

// loadBank loads the question bank file named by --bank into b.
// A missing file is an empty bank, not an error. Import warnings are
// printed to stderr.
func loadBank(cmd *cobra.Command, b *bank.Bank, coll *standards.Collection) (string, error) {
	path, _ := cmd.Flags().GetString("bank")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	res, err := b.ImportFile(path, coll)
	if err != nil {
		return path, fmt.Errorf("load bank %s: %w", path, err)
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	return path, nil
}
