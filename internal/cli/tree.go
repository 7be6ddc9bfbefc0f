package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ddddddO/gtree"
	"github.com/sitepack-labs/sitepack/internal/branding"
	"github.com/sitepack-labs/sitepack/internal/sites"
	"github.com/spf13/cobra"
)

var (
	treeDetails bool
	treeJSON    bool
)

var treeCmd = &cobra.Command{
	Use:     "tree",
	Aliases: []string{"browse", "ls"},
	Short:   "Show packages from all configured sites",
	Long: `Fetch every configured site manifest and print its packages grouped by
category. If any site fails to load, nothing is printed.`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVar(&treeDetails, "details", false, "Show version and description of each package")
	treeCmd.Flags().BoolVar(&treeJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd, false)
	if err != nil {
		return err
	}

	if err := a.browser.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("loading sites: %w", err)
	}

	roots := a.browser.Roots()
	if treeJSON {
		return printTreeJSON(cmd.OutOrStdout(), roots)
	}
	if len(roots) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No sites configured. Run '%s sites add <url>' to add one.\n", branding.CLIName())
		return nil
	}
	return printTree(cmd.OutOrStdout(), roots, treeDetails)
}

func printTree(w io.Writer, roots []*sites.Node, details bool) error {
	for _, site := range roots {
		root := gtree.NewRoot(siteLabel(site.Label))
		for _, cat := range site.Children {
			catNode := root.Add(categoryLabel(cat.Label))
			for _, p := range cat.Children {
				catNode.Add(packageLabel(p, details))
			}
		}
		if err := gtree.OutputFromRoot(w, root); err != nil {
			return fmt.Errorf("rendering tree for %s: %w", site.Label, err)
		}
	}
	return nil
}

func siteLabel(name string) string {
	if name == "" {
		return "(unnamed site)"
	}
	return name
}

func categoryLabel(name string) string {
	if name == "" {
		return "(uncategorized)"
	}
	return name
}

func packageLabel(n *sites.Node, details bool) string {
	if !details || n.Package == nil {
		return n.Label
	}
	label := n.Label
	if v := n.Package.DisplayVersion(); v != "" {
		label += " " + v
		if n.Package.Prerelease() {
			label += " (prerelease)"
		}
	}
	if n.Package.Description != "" {
		label += ": " + n.Package.Description
	}
	return label
}

// treeEntry is the JSON shape of a node.
type treeEntry struct {
	Kind        string      `json:"kind"`
	Label       string      `json:"label"`
	Version     string      `json:"version,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	Children    []treeEntry `json:"children,omitempty"`
}

func toEntry(n *sites.Node) treeEntry {
	e := treeEntry{Kind: n.Kind.String(), Label: n.Label}
	if n.Package != nil {
		e.Version = n.Package.Version
		e.Description = n.Package.Description
		e.URL = n.Package.URL
	}
	for _, c := range n.Children {
		e.Children = append(e.Children, toEntry(c))
	}
	return e
}

func printTreeJSON(w io.Writer, roots []*sites.Node) error {
	entries := make([]treeEntry, 0, len(roots))
	for _, r := range roots {
		entries = append(entries, toEntry(r))
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
