package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/soltrack/soltrack/internal/mastery"
	"github.com/soltrack/soltrack/internal/review"
	"github.com/soltrack/soltrack/internal/ui/theme"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show which standards are due for practice",
	Long: "Build a review plan from the learner's mastery records. Weak standards " +
		"come back after a day; mastered ones stretch out to two weeks. The plan " +
		"is recomputed from the attempt history on every run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		all, _ := cmd.Flags().GetBool("all")

		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		user, err := s.UserRepo().Get(ctx, userID)
		if err != nil {
			return err
		}

		planner := review.NewPlanner(mastery.NewService(s.AttemptRepo()))
		now := time.Now()

		var entries []*review.Entry
		if all {
			entries, err = planner.Plan(ctx, userID, now)
		} else {
			entries, err = planner.Due(ctx, userID, now)
		}
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			if all {
				fmt.Printf("%s has no attempts yet.\n", user.Name)
			} else {
				fmt.Printf("Nothing due for %s. 🎉\n", user.Name)
			}
			return nil
		}

		fmt.Println(theme.Title.Render(fmt.Sprintf("Review plan for %s", user.Name)))
		fmt.Println()
		fmt.Printf("%-28s  %-10s  %7s  %s\n", "Standard", "Status", "EWMA", "Next review")
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range entries {
			fmt.Printf("%-28s  %-10s  %7.2f  %s\n",
				truncate(e.StandardID, 28),
				string(e.Status(now)),
				e.Record.EWMA,
				nextReviewLabel(e, now),
			)
		}
		return nil
	},
}

func nextReviewLabel(e *review.Entry, now time.Time) string {
	switch e.Status(now) {
	case review.StatusOverdue:
		return fmt.Sprintf("%.0f days overdue", e.OverdueDays(now))
	case review.StatusDue:
		return "today"
	default:
		d := e.DaysUntil(now)
		if d == 1 {
			return "tomorrow"
		}
		return fmt.Sprintf("in %d days", d)
	}
}

func init() {
	reviewCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	reviewCmd.Flags().Bool("all", false, "Include standards that are not yet due")
}
