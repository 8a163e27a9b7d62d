package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietdv277/awsctx/internal/ui"
)

var currentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active profile and region",
	Long: `Display the effective profile/region pair and where each half came
from (environment override, config store, or configured default).

Examples:
  awsctx current`,
	RunE: runCurrent,
}

func init() {
	rootCmd.AddCommand(currentCmd)
}

func runCurrent(cmd *cobra.Command, args []string) error {
	resolver, settings, err := newResolver()
	if err != nil {
		return err
	}

	sel := resolver.ResolveActive()

	fmt.Println("Active Selection")
	fmt.Println(ui.MutedStyle.Render("─────────────────────────────────"))
	fmt.Println()
	fmt.Printf("Profile:  %s %s\n",
		ui.HeaderStyle.Render(sel.Profile),
		ui.MutedStyle.Render("("+string(sel.ProfileSource)+")"))
	fmt.Printf("Region:   %s %s\n",
		sel.Region,
		ui.MutedStyle.Render("("+string(sel.RegionSource)+")"))

	if fav := settings.FavoriteFor(sel.Profile); fav != nil {
		fmt.Printf("Favorite: %s\n", ui.FavoriteStyle(fav.Color).Render("* "+fav.Color))
	}
	return nil
}
