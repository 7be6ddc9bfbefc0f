package manifest

import "github.com/Masterminds/semver/v3"

// Site is one remote manifest source.
type Site struct {
	Name     string
	Packages []Package
}

// Package is one installable unit listed by a site.
type Package struct {
	Category    string // grouping key, not unique
	Name        string // display label and destination folder name
	Version     string
	Description string
	URL         string // archive download location
}

// DisplayVersion returns the version normalized as semver when it parses as
// one (e.g. "v1.2" → "1.2.0"), and the raw string otherwise.
func (p Package) DisplayVersion() string {
	if p.Version == "" {
		return ""
	}
	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return p.Version
	}
	return v.String()
}

// Prerelease reports whether the version is a semver prerelease.
func (p Package) Prerelease() bool {
	v, err := semver.NewVersion(p.Version)
	if err != nil {
		return false
	}
	return v.Prerelease() != ""
}

// Attribute and text keys of the decoded object form.
const (
	attrPrefix = "@_"
	textKey    = "#text"
)

// Element and attribute names recognized in a manifest.
const (
	elemPackage     = "package"
	elemDescription = "description"
	elemEntry       = "entry"

	attrName     = attrPrefix + "name"
	attrCategory = attrPrefix + "category"
	attrVersion  = attrPrefix + "version"
	attrURL      = attrPrefix + "url"
	attrHref     = attrPrefix + "href"
)
