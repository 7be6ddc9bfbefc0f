// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	ViewName    string `yaml:"view_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "sitepack",
			DisplayName: "Sitepack",
			Description: "Browse remote package sites and install packages",
			HomeDir:     ".sitepack",
			EnvPrefix:   "SITEPACK",
			ViewName:    "Site Packages",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sitepack").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".sitepack").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SITEPACK").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ViewName returns the title of the package view, used to scope progress output.
func ViewName() string { load(); return defaults.ViewName }

// UserAgent returns the User-Agent header sent with every HTTP request.
func UserAgent() string { return CLIName() + "-browser" }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("sites") → "SITEPACK_SITES".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
