package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/soltrack/soltrack/internal/store"
	"github.com/spf13/cobra"
)

var standardsCmd = &cobra.Command{
	Use:   "standards",
	Short: "Browse the standards catalog",
}

var standardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List standards in ingestion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetString("grade")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		standards, err := s.StandardRepo().List(context.Background(), store.StandardFilter{
			Subject: subject,
			Grade:   grade,
		})
		if err != nil {
			return fmt.Errorf("list standards: %w", err)
		}

		if len(standards) == 0 {
			fmt.Println("No standards found. Run 'soltrack ingest' to load a standards document.")
			return nil
		}

		fmt.Printf("%-12s  %-12s  %-8s  %-34s  %s\n", "Code", "Subject", "Grade", "Strand", "Description")
		fmt.Println(strings.Repeat("─", 110))
		for _, std := range standards {
			fmt.Printf("%-12s  %-12s  %-8s  %-34s  %s\n",
				std.Code,
				std.Subject,
				std.Grade,
				truncate(std.Strand, 34),
				truncate(std.Description, 48),
			)
		}
		fmt.Printf("\n%d standards\n", len(standards))
		return nil
	},
}

var standardsShowCmd = &cobra.Command{
	Use:   "show <standard-id>",
	Short: "Show one standard in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		std, err := s.StandardRepo().Get(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Code:        %s\n", std.Code)
		fmt.Printf("Subject:     %s\n", std.Subject)
		fmt.Printf("Grade:       %s\n", std.Grade)
		fmt.Printf("Strand:      %s\n", std.Strand)
		if std.Title != "" {
			fmt.Printf("Title:       %s\n", std.Title)
		}
		fmt.Printf("Difficulty:  %s\n", std.Difficulty)
		fmt.Printf("Complexity:  %s\n", std.CognitiveComplexity)
		if std.SourceDocument != "" {
			fmt.Printf("Source:      %s\n", std.SourceDocument)
		}
		fmt.Printf("\n%s\n", std.Description)

		if len(std.SubObjectives) > 0 {
			fmt.Println("\nSub-objectives:")
			for _, sub := range std.SubObjectives {
				fmt.Printf("  %-24s  %s\n", sub.Code, sub.Description)
			}
		}
		if len(std.KeyTerms) > 0 {
			fmt.Printf("\nKey terms: %s\n", strings.Join(std.KeyTerms, ", "))
		}
		if len(std.Prerequisites) > 0 {
			fmt.Printf("Prerequisites: %s\n", strings.Join(std.Prerequisites, ", "))
		}
		if len(std.Connections) > 0 {
			fmt.Printf("Connections: %s\n", strings.Join(std.Connections, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	standardsListCmd.Flags().String("subject", "", "Filter by subject (e.g. mathematics)")
	standardsListCmd.Flags().String("grade", "", "Filter by grade (e.g. 3, Algebra1)")

	standardsCmd.AddCommand(standardsListCmd)
	standardsCmd.AddCommand(standardsShowCmd)
}
