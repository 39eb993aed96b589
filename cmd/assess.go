package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/quizgen"
)

var assessCmd = &cobra.Command{
	Use:   "assess <standard-id>...",
	Short: "Assess whether standards can be tested with text-only questions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, st, bankPath, err := buildSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, id := range args {
			a, err := sess.Assess(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("assess %s: %w", id, err)
			}
			printAssessment(a)
		}

		if err := sess.Bank.ExportFile(bankPath); err != nil {
			return fmt.Errorf("save bank: %w", err)
		}
		fmt.Printf("\nSaved bank to %s\n", bankPath)
		return nil
	},
}

func printAssessment(a *quizgen.Assessment) {
	fmt.Printf("%s: %s\n", a.StandardID, feasibilityLabel(a.Feasibility))
	fmt.Printf("  %s\n", a.Reasoning)
	if len(a.SuggestedTypes) > 0 {
		labels := make([]string, len(a.SuggestedTypes))
		for i, t := range a.SuggestedTypes {
			labels[i] = t.Label()
		}
		fmt.Printf("  Suggested types: %s\n", strings.Join(labels, ", "))
	}
	if a.RequiresVisualAids {
		fmt.Println("  Note: requires visual aids")
	}
	if a.RequiresHandsOn {
		fmt.Println("  Note: requires hands-on activity")
	}
}

func feasibilityLabel(f quizgen.Feasibility) string {
	switch f {
	case quizgen.Feasible:
		return "✓ feasible"
	case quizgen.PartiallyFeasible:
		return "~ partially feasible"
	case quizgen.NotFeasible:
		return "✗ not feasible"
	default:
		return string(f)
	}
}
