package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/vietdv277/awsctx/internal/config"
	"github.com/vietdv277/awsctx/internal/envwriter"
	"github.com/vietdv277/awsctx/internal/profile"
	"github.com/vietdv277/awsctx/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use [profile-name]",
	Short: "Switch the active AWS profile",
	Long: `Switch to an AWS profile. With no argument, shows an interactive
selector.

The switch updates AWS_PROFILE and AWS_DEFAULT_REGION for this process and
writes the platform helper so future shells inherit the selection.

Examples:
  awsctx use                 # Interactive selector
  awsctx use prod            # Switch directly`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	resolver, settings, err := newResolver()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		profiles, err := resolver.ListProfiles()
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}
		if len(profiles) == 0 {
			fmt.Println("No AWS profiles found")
			fmt.Println("Add one with: awsctx add <name> --access-key-id ... --secret-access-key ...")
			return nil
		}

		active := resolver.ResolveActive()
		selected, err := ui.SelectProfile(profiles, active.Profile, favoriteColors(settings))
		if err != nil {
			return err
		}
		name = selected.Name
	}

	sel, err := resolver.SwitchTo(name)
	if err != nil {
		return fmt.Errorf("failed to switch profile: %w", err)
	}

	printSwitched(sel)
	return nil
}

func printSwitched(sel profile.Selection) {
	fmt.Printf("\nSwitched to profile %q (%s)\n", sel.Profile, sel.Region)

	if runtime.GOOS == "windows" {
		fmt.Println("New shells inherit the selection via setx.")
		return
	}

	helper := envwriter.NewScriptWriter(config.Dir())
	fmt.Printf("New shells inherit it by sourcing:\n  . %s\n", helper.ScriptPath())
	fmt.Println("For the current shell, run:")
	fmt.Printf("  export AWS_PROFILE=%s AWS_DEFAULT_REGION=%s\n", sel.Profile, sel.Region)
}
