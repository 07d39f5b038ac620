package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/soltrack/soltrack/internal/mastery"
	"github.com/soltrack/soltrack/internal/ui/theme"
	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Show per-standard mastery for a learner",
	Long: "Report the learner's mastery on every standard they have attempted. " +
		"Mastery is an exponentially weighted moving average of correctness, " +
		"recomputed from the attempt history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		standardID, _ := cmd.Flags().GetString("standard")

		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		svc := mastery.NewService(s.AttemptRepo())

		user, err := s.UserRepo().Get(ctx, userID)
		if err != nil {
			return err
		}

		if standardID != "" {
			rec, err := svc.ForUserStandard(ctx, userID, standardID)
			if err != nil {
				return err
			}
			printMasteryRow(standardID, rec)
			return nil
		}

		records, err := svc.ForUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Printf("%s has no attempts yet.\n", user.Name)
			return nil
		}

		ids := make([]string, 0, len(records))
		for id := range records {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Println(theme.Title.Render(fmt.Sprintf("Mastery for %s", user.Name)))
		fmt.Println()
		fmt.Printf("%-28s  %-22s  %7s  %8s  %s\n", "Standard", "Progress", "EWMA", "Attempts", "Level")
		fmt.Println(strings.Repeat("─", 90))
		for _, id := range ids {
			printMasteryRow(id, records[id])
		}
		return nil
	},
}

func printMasteryRow(standardID string, rec mastery.Record) {
	fmt.Printf("%-28s  %-22s  %7.2f  %8d  %s\n",
		truncate(standardID, 28),
		theme.Bar(rec.EWMA, 20),
		rec.EWMA,
		rec.Count,
		theme.Level(rec.Level()),
	)
}

func init() {
	masteryCmd.Flags().StringP("user", "u", "", "Learner id (required)")
	masteryCmd.Flags().StringP("standard", "s", "", "Limit the report to one standard id")
}
