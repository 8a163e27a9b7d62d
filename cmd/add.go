package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/awsctx/internal/profile"
)

var addCmd = &cobra.Command{
	Use:   "add <profile-name>",
	Short: "Add a new AWS profile",
	Long: `Add a profile to the credentials store and record its region in the
config store.

Examples:
  awsctx add team-a --access-key-id AKIA... --secret-access-key ... --region eu-west-1
  awsctx add team-b --access-key-id AKIA... --secret-access-key ... --switch`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var (
	addAccessKeyID     string
	addSecretAccessKey string
	addRegion          string
	addSwitch          bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addAccessKeyID, "access-key-id", "", "AWS access key ID")
	addCmd.Flags().StringVar(&addSecretAccessKey, "secret-access-key", "", "AWS secret access key")
	addCmd.Flags().StringVar(&addRegion, "region", "", "Region for the profile (default: configured default region)")
	addCmd.Flags().BoolVar(&addSwitch, "switch", false, "Switch to the new profile after adding it")
	_ = addCmd.MarkFlagRequired("access-key-id")
	_ = addCmd.MarkFlagRequired("secret-access-key")
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	resolver, _, err := newResolver()
	if err != nil {
		return err
	}

	entry := profile.Entry{
		Name:            name,
		AccessKeyID:     addAccessKeyID,
		SecretAccessKey: addSecretAccessKey,
		Region:          addRegion,
	}
	if err := resolver.AddProfile(entry); err != nil {
		return fmt.Errorf("failed to add profile: %w", err)
	}

	fmt.Printf("Profile %q added (region: %s)\n", name, resolver.RegionFor(name))

	if addSwitch {
		sel, err := resolver.SwitchTo(name)
		if err != nil {
			return fmt.Errorf("failed to switch profile: %w", err)
		}
		printSwitched(sel)
	}
	return nil
}
