// Package config manages user-level settings stored at ~/.sitepack/config.yaml.
// It holds the ordered list of site manifest URLs, the workspace folders used
// as install roots, and a few presentation knobs (locale, log level, minimum
// progress duration). Every key can be overridden with a SITEPACK_ env var.
package config
