package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a skeleton credentials file",
	Long: `Create the credentials store with a placeholder default profile.
Fails if a credentials file already exists.

Examples:
  awsctx init`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	resolver, _, err := newResolver()
	if err != nil {
		return err
	}

	if err := resolver.Bootstrap(); err != nil {
		return err
	}

	fmt.Printf("Created credentials file at %s\n", resolver.CredentialsPath)
	fmt.Println("Edit it to add your AWS credentials, or add a profile with:")
	fmt.Println("  awsctx add <name> --access-key-id ... --secret-access-key ...")
	return nil
}
