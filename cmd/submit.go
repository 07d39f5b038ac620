package cmd

import (
	"context"
	"fmt"

	"github.com/soltrack/soltrack/internal/scoring"
	"github.com/soltrack/soltrack/internal/ui/theme"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit <item-id>",
	Short: "Submit a response to an item and record the attempt",
	Long: "Score a response against a stored item and append the attempt to the " +
		"learner's history. MCQ responses are the choice id; FIB responses are the " +
		"typed answer; CR responses are free text judged against the rubric.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		response, _ := cmd.Flags().GetString("response")
		timeSpent, _ := cmd.Flags().GetInt("time")

		if userID == "" {
			return fmt.Errorf("--user is required")
		}
		if response == "" {
			return fmt.Errorf("--response is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		engine := scoring.NewEngine(
			s.ItemRepo(),
			s.UserRepo(),
			s.AttemptRepo(),
			scoring.NewLLMJudge(newProviderOrDegraded(ctx, s)),
		)

		attempt, err := engine.Submit(ctx, scoring.Submission{
			UserID:           userID,
			ItemID:           args[0],
			Response:         response,
			TimeSpentSeconds: timeSpent,
		})
		if err != nil {
			return err
		}

		if attempt.Correct {
			fmt.Println(theme.Correct.Render("Correct!"))
		} else {
			fmt.Println(theme.Incorrect.Render("Not quite."))
		}
		fmt.Printf("Score: %.0f / %.0f\n", attempt.Score, attempt.MaxScore)
		if attempt.Feedback != "" {
			fmt.Printf("\n%s\n", attempt.Feedback)
		}
		fmt.Printf("\nAttempt recorded for standard %s.\n", attempt.StandardID)
		return nil
	},
}

func init() {
	submitCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	submitCmd.Flags().StringP("response", "r", "", "The learner's response (required)")
	submitCmd.Flags().Int("time", 0, "Seconds spent on the item")
}
