package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/awsctx/internal/aws"
	"github.com/vietdv277/awsctx/internal/ui"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Verify the active selection against STS",
	Long: `Call STS GetCallerIdentity with the active profile and region to
check that the selection actually authenticates.

Examples:
  awsctx whoami`,
	RunE: runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	resolver, _, err := newResolver()
	if err != nil {
		return err
	}

	sel := resolver.ResolveActive()
	fmt.Printf("Profile:  %s\n", ui.HeaderStyle.Render(sel.Profile))
	fmt.Printf("Region:   %s\n", sel.Region)
	fmt.Println()

	fmt.Print("Auth:     ")
	identity, err := aws.GetCallerIdentity(cmd.Context(), sel.Profile, sel.Region)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render("✗ Not authenticated"))
		fmt.Printf("          %s\n", ui.MutedStyle.Render(err.Error()))
		return nil
	}

	fmt.Println(ui.ActiveStyle.Render("✓ Authenticated"))
	fmt.Printf("Account:  %s\n", identity.Account)
	fmt.Printf("User:     %s\n", identity.UserID)
	if identity.Arn != "" {
		fmt.Printf("ARN:      %s\n", ui.MutedStyle.Render(identity.Arn))
	}
	return nil
}
