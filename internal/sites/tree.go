package sites

import (
	"slices"

	"github.com/sitepack-labs/sitepack/internal/manifest"
	"golang.org/x/text/collate"
)

// Kind discriminates tree nodes.
type Kind int

const (
	KindSite Kind = iota + 1
	KindCategory
	KindPackage
)

func (k Kind) String() string {
	switch k {
	case KindSite:
		return "site"
	case KindCategory:
		return "category"
	case KindPackage:
		return "package"
	default:
		return "unknown"
	}
}

// Node is one entry of the display tree. Package is set only on KindPackage
// nodes.
type Node struct {
	Kind     Kind
	Label    string
	Children []*Node
	Package  *manifest.Package
}

// IsProject reports whether the node is an installable leaf.
func (n *Node) IsProject() bool {
	return n.Kind == KindPackage
}

// categoryGroup is one bucket of the category accumulation.
type categoryGroup struct {
	name     string
	packages []manifest.Package
}

// groupByCategory buckets packages by category. Categories keep the order in
// which they first appear in the manifest.
func groupByCategory(pkgs []manifest.Package) []*categoryGroup {
	index := make(map[string]*categoryGroup)
	var groups []*categoryGroup
	for _, p := range pkgs {
		g, ok := index[p.Category]
		if !ok {
			g = &categoryGroup{name: p.Category}
			index[p.Category] = g
			groups = append(groups, g)
		}
		g.packages = append(g.packages, p)
	}
	return groups
}

// buildSiteNode turns a parsed site into a site node. Packages inside each
// category are ordered by name with coll.
func buildSiteNode(site *manifest.Site, coll *collate.Collator) *Node {
	root := &Node{Kind: KindSite, Label: site.Name}
	for _, g := range groupByCategory(site.Packages) {
		slices.SortStableFunc(g.packages, func(a, b manifest.Package) int {
			return coll.CompareString(a.Name, b.Name)
		})

		cat := &Node{Kind: KindCategory, Label: g.name}
		for i := range g.packages {
			cat.Children = append(cat.Children, &Node{
				Kind:    KindPackage,
				Label:   g.packages[i].Name,
				Package: &g.packages[i],
			})
		}
		root.Children = append(root.Children, cat)
	}
	return root
}
