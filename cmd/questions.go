package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbox/internal/quiz"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate and list the built-in questions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := quiz.DefaultQuestions()
		if err != nil {
			return fmt.Errorf("question bank: %w", err)
		}
		out := cmd.OutOrStdout()
		for i, q := range qs {
			fmt.Fprintf(out, "%d. %s\n", i+1, q.Prompt)
			for j, c := range q.Choices {
				mark := " "
				if q.IsCorrect(j) {
					mark = "*"
				}
				fmt.Fprintf(out, "   %s %d) %s\n", mark, j+1, c)
			}
		}
		fmt.Fprintf(out, "%d questions OK\n", len(qs))
		return nil
	},
}
