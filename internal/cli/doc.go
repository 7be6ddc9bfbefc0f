// Package cli defines the Cobra command tree for the sitepack CLI. Each file
// registers one top-level command (tree, install, sites, config, version)
// with the root command. Commands delegate loading to the sites package and
// installing to the installer package, and only handle flags, output
// formatting, and user interaction.
package cli
