package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vietdv277/awsctx/internal/config"
	"github.com/vietdv277/awsctx/internal/envwriter"
	"github.com/vietdv277/awsctx/internal/profile"
)

var rootCmd = &cobra.Command{
	Use:   "awsctx",
	Short: "awsctx - switch AWS CLI profiles and regions",
	Long: `awsctx manages the active AWS CLI profile and region.

It reads the shared credentials and config files, resolves the effective
profile/region pair, and switches between profiles for both the current
process and future shells.

Commands:
  awsctx ls                  # List profiles
  awsctx use                 # Interactive profile selector
  awsctx use prod            # Switch to a profile by name
  awsctx current             # Show the active selection
  awsctx whoami              # Verify the selection against STS
  awsctx add team-a ...      # Add a new profile
  awsctx watch               # Watch for external profile changes`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newResolver wires a resolver from the settings file, the process
// environment, and the platform env writer.
func newResolver() (*profile.Resolver, *config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	r := &profile.Resolver{
		CredentialsPath: settings.CredentialsPath,
		ConfigPath:      settings.ConfigPath,
		DefaultRegion:   settings.DefaultRegion,
		Env:             profile.ProcessEnv(),
		Writer:          envwriter.NewScriptWriter(config.Dir()),
	}
	return r, settings, nil
}

// favoriteColors maps profile names to favorite colors for presentation.
func favoriteColors(settings *config.Settings) map[string]string {
	colors := make(map[string]string, len(settings.Favorites))
	for _, f := range settings.Favorites {
		colors[f.Name] = f.Color
	}
	return colors
}
