package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/soltrack/soltrack/internal/itemgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <standard-id>",
	Short: "Generate an assessment item for a standard",
	Long: "Generate one assessment item aligned to a standard and store it. " +
		"The standard id is the natural key shown by 'soltrack standards list', " +
		"e.g. mathematics-3-3.NS.1.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemType, _ := cmd.Flags().GetString("type")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		grade, _ := cmd.Flags().GetString("grade")
		age, _ := cmd.Flags().GetInt("age")
		showKey, _ := cmd.Flags().GetBool("show-key")

		t := itemgen.ItemType(strings.ToUpper(itemType))
		if !t.Valid() {
			return fmt.Errorf("unknown item type %q (want MCQ, FIB, or CR)", itemType)
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := newProvider(ctx, s)
		if err != nil {
			return err
		}

		svc := itemgen.NewService(
			itemgen.New(provider, itemgen.DefaultConfig()),
			s.StandardRepo(),
			s.ItemRepo(),
		)

		item, err := svc.Generate(ctx, itemgen.Request{
			StandardID: args[0],
			Type:       t,
			Difficulty: difficulty,
			Grade:      grade,
			Age:        age,
		})
		if err != nil {
			return err
		}

		printItem(item, showKey)
		return nil
	},
}

func printItem(item *itemgen.Item, showKey bool) {
	fmt.Printf("Item:       %s\n", item.ID)
	fmt.Printf("Standard:   %s\n", item.StandardID)
	fmt.Printf("Type:       %s  (difficulty %s, DOK %d)\n", item.Type, item.Difficulty, item.DOK)
	fmt.Printf("\n%s\n", item.Stem)

	switch item.Type {
	case itemgen.TypeMultipleChoice:
		fmt.Println()
		for _, c := range item.MCQ.Choices {
			marker := " "
			if showKey && c.Correct {
				marker = "*"
			}
			fmt.Printf("  %s %s) %s\n", marker, c.ID, c.Text)
		}
		if showKey {
			for _, c := range item.MCQ.Choices {
				if r := item.MCQ.Rationale[c.ID]; r != "" {
					fmt.Printf("\n  %s: %s", c.ID, r)
				}
			}
			fmt.Println()
		}
	case itemgen.TypeFillInBlank:
		if showKey {
			fmt.Printf("\nAnswer: %s\n", item.FIB.AnswerKey.Expected)
			if len(item.FIB.AnswerKey.AltEquivalents) > 0 {
				fmt.Printf("Also accepted: %s\n", strings.Join(item.FIB.AnswerKey.AltEquivalents, ", "))
			}
		}
	case itemgen.TypeConstructedResponse:
		if showKey {
			fmt.Println("\nExpected ideas:")
			for _, idea := range item.CR.ExpectedIdeas {
				fmt.Printf("  - %s\n", idea)
			}
			fmt.Println("Rubric:")
			for _, d := range item.CR.Rubric {
				fmt.Printf("  %-20s  %s\n", d.Dimension, d.Scale)
			}
		}
	}

	fmt.Printf("\nSubmit with: soltrack submit %s --user <user-id> --response <answer>\n", item.ID)
}

func init() {
	generateCmd.Flags().StringP("type", "t", "MCQ", "Item type: MCQ, FIB, or CR")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium, or hard")
	generateCmd.Flags().String("grade", "", "Target grade (defaults to the standard's grade)")
	generateCmd.Flags().Int("age", 0, "Learner age, used to calibrate language")
	generateCmd.Flags().Bool("show-key", false, "Print the answer key and rationale")
}
