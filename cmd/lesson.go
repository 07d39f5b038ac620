package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/soltrack/soltrack/internal/lessons"
	"github.com/soltrack/soltrack/internal/mastery"
	"github.com/soltrack/soltrack/internal/ui/theme"
	"github.com/spf13/cobra"
)

// lessonErrorWindow bounds how many recent incorrect attempts feed the
// lesson prompt.
const lessonErrorWindow = 5

var lessonCmd = &cobra.Command{
	Use:   "lesson <standard-id>",
	Short: "Generate a micro-lesson for a standard",
	Long: "Generate a short lesson with an explanation, a worked example, and one " +
		"practice question. With --user, the lesson addresses the learner's " +
		"recent mistakes on the standard.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		std, err := s.StandardRepo().Get(ctx, args[0])
		if err != nil {
			return err
		}

		input := lessons.Input{Standard: std}
		if userID != "" {
			rec, err := mastery.NewService(s.AttemptRepo()).ForUserStandard(ctx, userID, std.ID())
			if err != nil {
				return err
			}
			input.Accuracy = rec.EWMA
			input.AttemptCount = rec.Count

			attempts, err := s.AttemptRepo().ListByUserStandard(ctx, userID, std.ID())
			if err != nil {
				return err
			}
			for _, a := range attempts {
				if a.Correct || a.Feedback == "" {
					continue
				}
				input.RecentErrors = append(input.RecentErrors, a.Feedback)
			}
			if len(input.RecentErrors) > lessonErrorWindow {
				input.RecentErrors = input.RecentErrors[len(input.RecentErrors)-lessonErrorWindow:]
			}
		}

		provider, err := newProvider(ctx, s)
		if err != nil {
			return err
		}

		lesson, err := lessons.NewService(provider, lessons.DefaultConfig()).Generate(ctx, input)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render(lesson.Title))
		fmt.Printf("Standard: %s\n\n", lesson.StandardID)
		fmt.Println(lesson.Explanation)
		fmt.Println()
		fmt.Println("Worked example:")
		fmt.Println(lesson.WorkedExample)
		fmt.Println()
		fmt.Println("Try it:")
		fmt.Println(lesson.PracticeQuestion.Text)
		fmt.Println()
		fmt.Println(theme.Hint.Render(strings.TrimSpace(
			"Answer: " + lesson.PracticeQuestion.Answer + " (" + lesson.PracticeQuestion.Explanation + ")")))
		return nil
	},
}

func init() {
	lessonCmd.Flags().StringP("user", "u", "", "Tailor the lesson to this learner's mistakes")
}
