package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/soltrack/soltrack/internal/store"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage learner profiles",
}

var userAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		age, _ := cmd.Flags().GetInt("age")

		name := strings.TrimSpace(args[0])
		if name == "" {
			return fmt.Errorf("name must not be empty")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		u := &store.User{
			ID:    uuid.NewString(),
			Name:  name,
			Grade: grade,
			Age:   age,
		}
		if err := s.UserRepo().Create(context.Background(), u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		fmt.Printf("Added %s (id %s)\n", u.Name, u.ID)
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learners",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		users, err := s.UserRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No learners yet. Run 'soltrack user add <name>' to add one.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-8s  %s\n", "ID", "Name", "Grade", "Age")
		fmt.Println(strings.Repeat("─", 76))
		for _, u := range users {
			age := "-"
			if u.Age > 0 {
				age = fmt.Sprintf("%d", u.Age)
			}
			fmt.Printf("%-36s  %-20s  %-8s  %s\n", u.ID, truncate(u.Name, 20), u.Grade, age)
		}
		return nil
	},
}

func init() {
	userAddCmd.Flags().String("grade", "", "Learner's grade level (e.g. 3, Algebra1)")
	userAddCmd.Flags().Int("age", 0, "Learner's age, used to calibrate item language")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
}
