package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sitepack-labs/sitepack/internal/branding"
	"github.com/sitepack-labs/sitepack/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	workspaceFlag []string
	logLevelFlag  string
)

// errReported marks a failure already shown to the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` browses package sites: remote XML manifests listing downloadable
packages. Packages are shown grouped by site and category, and can be installed
into the first workspace folder.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&workspaceFlag, "workspace", "w", nil,
		"Workspace folder (repeatable); the first one is the install root. Defaults to workspace_folders from config")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
