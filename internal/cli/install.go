package cli

import (
	"fmt"
	"strings"

	"github.com/sitepack-labs/sitepack/internal/branding"
	"github.com/sitepack-labs/sitepack/internal/installer"
	"github.com/spf13/cobra"
)

var installYes bool

var installCmd = &cobra.Command{
	Use:   "install [<site>/][<category>/]<package>",
	Short: "Download a package and extract it into the workspace",
	Long: `Load all configured sites, find the package, download its archive and
extract it into <workspace>/<package>. If that directory already exists you are
asked before it is overwritten. Qualify the package with its site and category
when the name alone is ambiguous.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Overwrite an existing destination without asking")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	site, category, name := splitPackagePath(args[0])

	a, err := newApp(cmd, installYes)
	if err != nil {
		return err
	}

	if err := a.browser.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("loading sites: %w", err)
	}
	if len(a.browser.Roots()) == 0 {
		return fmt.Errorf("no sites configured. Run '%s sites add <url>' to add one", branding.CLIName())
	}

	node, err := a.browser.FindPackage(site, category, name)
	if err != nil {
		return err
	}

	res := a.installer.Install(cmd.Context(), *node.Package)
	installer.Render(res, a.term, a.logger)
	if res.Status == installer.StatusFailed {
		return errReported
	}
	return nil
}

// splitPackagePath splits "site/category/name". The last two separators
// delimit category and name, so site names may contain slashes.
func splitPackagePath(arg string) (site, category, name string) {
	parts := strings.Split(arg, "/")
	switch len(parts) {
	case 1:
		return "", "", parts[0]
	case 2:
		return "", parts[0], parts[1]
	default:
		n := len(parts)
		return strings.Join(parts[:n-2], "/"), parts[n-2], parts[n-1]
	}
}
