package cli

import (
	"fmt"

	"github.com/sitepack-labs/sitepack/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	sitesCmd.AddCommand(sitesListCmd)
	sitesCmd.AddCommand(sitesAddCmd)
	sitesCmd.AddCommand(sitesRemoveCmd)
	rootCmd.AddCommand(sitesCmd)
}

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Manage the list of site manifest URLs",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the configured site URLs in load order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := config.SiteURLs()
		if len(urls) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sites configured.")
			return nil
		}
		for _, u := range urls {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return nil
	},
}

var sitesAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Append a site manifest URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.AddSite(args[0]); err != nil {
			return fmt.Errorf("adding site %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", args[0])
		return nil
	},
}

var sitesRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Remove a site manifest URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := config.RemoveSite(args[0])
		if err != nil {
			return fmt.Errorf("removing site %s: %w", args[0], err)
		}
		if !removed {
			return fmt.Errorf("site %s is not configured", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}
