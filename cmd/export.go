package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/bank"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the question bank as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		coll, err := loadCollection(cmd)
		if err != nil {
			return err
		}

		b := bank.New()
		if _, err := loadBank(cmd, b, coll); err != nil {
			return err
		}

		if out == "" {
			return b.Export(os.Stdout)
		}
		if err := b.ExportFile(out); err != nil {
			return err
		}
		fmt.Printf("Exported %d standards (%d questions) to %s\n",
			b.Len(), b.TotalQuestions(), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
