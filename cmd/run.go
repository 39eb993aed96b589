package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizforge/internal/app"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
	"github.com/abhisek/quizforge/internal/session"
	"github.com/abhisek/quizforge/internal/store"
)

// runApp opens the store, loads standards and the bank, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	logger := newLogger()
	defer logger.Sync()

	coll, err := loadCollection(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// The TUI only reads and edits the bank, so it gets no generator.
	sess := session.New(coll, nil)
	bankPath, err := loadBank(cmd, sess.Bank, coll)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Session:  sess,
		BankPath: bankPath,
		Logger:   logger,
	})
}

// buildSession wires everything the generation commands need: logger,
// store, provider, generator, standards, and the loaded bank. The caller
// must Close the returned store.
func buildSession(cmd *cobra.Command) (*session.Session, *store.Store, string, error) {
	logger := newLogger()

	coll, err := loadCollection(cmd)
	if err != nil {
		return nil, nil, "", err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, "", fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath, logger)
	if err != nil {
		return nil, nil, "", fmt.Errorf("open store: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.RequestLog())
	if err != nil {
		st.Close()
		return nil, nil, "", fmt.Errorf("model provider: %w", err)
	}

	sess := session.New(coll, quizgen.New(provider, quizgen.DefaultConfig()))
	bankPath, err := loadBank(cmd, sess.Bank, coll)
	if err != nil {
		st.Close()
		return nil, nil, "", err
	}

	return sess, st, bankPath, nil
}

// newLogger builds the file-backed diagnostic logger. The TUI owns
// stdout, so diagnostics go to a file next to the database. Falls back
// to a no-op logger when the file can't be set up.
func newLogger() *zap.Logger {
	path, err := store.DefaultLogPath()
	if err != nil {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
