package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/bank"
	"github.com/abhisek/quizforge/internal/quizgen"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show question bank statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		coll, err := loadCollection(cmd)
		if err != nil {
			return err
		}

		b := bank.New()
		if _, err := loadBank(cmd, b, coll); err != nil {
			return err
		}

		stats := b.Statistics()
		if stats.TotalStandards == 0 {
			fmt.Println("The question bank is empty.")
			return nil
		}

		fmt.Println("Question Bank")
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-28s  %12d\n", "Standards covered", stats.TotalStandards)
		fmt.Printf("%-28s  %12d\n", "Total questions", stats.TotalQuestions)
		fmt.Printf("%-28s  %12.1f\n", "Avg questions per standard", stats.AveragePerStandard)
		if stats.MostCommonType != "" {
			fmt.Printf("%-28s  %12s\n", "Most common type", stats.MostCommonType.Label())
		}

		fmt.Println()
		fmt.Println("By Type")
		fmt.Println(strings.Repeat("─", 44))
		for _, t := range quizgen.AllQuestionTypes() {
			if n := stats.CountsByType[t]; n > 0 {
				fmt.Printf("%-28s  %12d\n", t.Label(), n)
			}
		}

		fmt.Println()
		fmt.Println("By Difficulty")
		fmt.Println(strings.Repeat("─", 44))
		for _, d := range quizgen.AllDifficulties() {
			if n := stats.CountsByDifficulty[d]; n > 0 {
				fmt.Printf("%-28s  %12d\n", capitalize(string(d)), n)
			}
		}

		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
