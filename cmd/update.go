package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/soltrack/soltrack/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update soltrack to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checkOnly, _ := cmd.Flags().GetBool("check")
		target, _ := cmd.Flags().GetString("version")

		checker := selfupdate.NewChecker()
		ctx := context.Background()

		if checkOnly {
			res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
			if err != nil {
				return err
			}
			if !res.UpdateAvailable {
				fmt.Printf("soltrack %s is up to date.\n", version)
				return nil
			}
			fmt.Printf("Update available: %s -> %s\n", res.CurrentVersion, res.LatestVersion)
			if res.ReleaseURL != "" {
				fmt.Println(res.ReleaseURL)
			}
			fmt.Println("Run 'soltrack update' to install it.")
			return nil
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})
		switch {
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Printf("soltrack %s is already the latest version.\n", version)
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			return fmt.Errorf("this is a development build; install releases from source or GitHub")
		}
		return err
	},
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only check whether an update is available")
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of the latest")
}
