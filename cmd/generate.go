package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/quizgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate <standard-id>...",
	Short: "Generate quiz questions for standards",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		typeNames, _ := cmd.Flags().GetStringSlice("types")
		force, _ := cmd.Flags().GetBool("force")

		var types []quizgen.QuestionType
		for _, name := range typeNames {
			t, err := quizgen.ParseQuestionType(name)
			if err != nil {
				return err
			}
			types = append(types, t)
		}

		sess, st, bankPath, err := buildSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		opts := quizgen.BatchOptions{Count: count, Types: types, Force: force}
		results, err := sess.GenerateMany(cmd.Context(), args, opts)

		// Print what we got even when some standards failed; the bank
		// keeps every question that succeeded.
		for _, id := range args {
			res, ok := results[id]
			if !ok {
				continue
			}
			printBatch(res)
		}

		if saveErr := sess.Bank.ExportFile(bankPath); saveErr != nil {
			return fmt.Errorf("save bank: %w", saveErr)
		}
		fmt.Printf("\nSaved bank to %s\n", bankPath)
		return err
	},
}

func printBatch(res *quizgen.BatchResult) {
	fmt.Printf("\n── %s ", res.StandardID)
	fmt.Println(strings.Repeat("─", 50))

	if res.Assessment != nil {
		fmt.Printf("Feasibility: %s\n", feasibilityLabel(res.Assessment.Feasibility))
		if res.Assessment.Feasibility == quizgen.NotFeasible && len(res.Questions) == 0 {
			fmt.Println("Skipped: not feasible for text-based testing (use --force to override)")
			return
		}
	}

	for i, q := range res.Questions {
		fmt.Printf("\n%d. [%s, %s] %s\n", i+1, q.Type.Label(), q.Difficulty, q.Text)
		for _, opt := range q.Options {
			marker := " "
			if opt == q.CorrectAnswer {
				marker = "*"
			}
			fmt.Printf("   %s %s\n", marker, opt)
		}
		if len(q.Options) == 0 {
			fmt.Printf("   Answer: %s\n", q.CorrectAnswer)
		}
		if q.Explanation != "" {
			fmt.Printf("   Why: %s\n", q.Explanation)
		}
	}

	for _, f := range res.Failures {
		fmt.Printf("\nfailed: %s question: %v\n", f.QuestionType.Label(), f.Err)
	}
}

func init() {
	generateCmd.Flags().IntP("count", "n", 0, "Number of questions to generate (default from config)")
	generateCmd.Flags().StringSlice("types", nil, "Restrict question types (multiple_choice, fill_in_blank, true_false, short_answer)")
	generateCmd.Flags().Bool("force", false, "Generate even when the assessment says not feasible")
}
