package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/bank"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import question bank files, merging into the current bank",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		coll, err := loadCollection(cmd)
		if err != nil {
			return err
		}

		b := bank.New()
		bankPath, err := loadBank(cmd, b, coll)
		if err != nil {
			return err
		}

		for _, path := range args {
			res, err := b.ImportFile(path, coll)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			for _, w := range res.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			fmt.Printf("%s: %d standards, %d questions", path, res.Standards, res.Questions)
			if len(res.Warnings) > 0 {
				fmt.Printf(" (%d warnings)", len(res.Warnings))
			}
			fmt.Println()
		}

		if err := b.ExportFile(bankPath); err != nil {
			return fmt.Errorf("save bank: %w", err)
		}
		fmt.Printf("Saved bank to %s\n", bankPath)
		return nil
	},
}
