package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/awsctx/internal/profile"
	"github.com/vietdv277/awsctx/internal/ui"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available AWS profiles",
	Long: `List all profiles from the credentials store, with the active one
marked and favorites starred.

Examples:
  awsctx ls`,
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	resolver, settings, err := newResolver()
	if err != nil {
		return err
	}

	profiles, err := resolver.ListProfiles()
	if err != nil {
		if errors.Is(err, profile.ErrStoreUnavailable) {
			fmt.Printf("No credentials file at %s\n", resolver.CredentialsPath)
			fmt.Println("Create a skeleton with:")
			fmt.Println("  awsctx init")
			return nil
		}
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No AWS profiles found")
		fmt.Printf("Add one with: awsctx add <name> --access-key-id ... --secret-access-key ...\n")
		return nil
	}

	active := resolver.ResolveActive()
	ui.PrintProfileTable(profiles, active.Profile, favoriteColors(settings))
	return nil
}
