package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sitepack-labs/sitepack/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeySites            = "sites"
	KeyWorkspaceFolders = "workspace_folders"
	KeyLocale           = "locale"
	KeyLogLevel         = "log_level"
	KeyMinProgress      = "min_progress"
)

var keys = []string{KeySites, KeyWorkspaceFolders, KeyLocale, KeyLogLevel, KeyMinProgress}

// Dir returns the path to the config directory (~/.sitepack/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.sitepack/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for _, key := range keys {
		_ = viper.BindEnv(key, branding.EnvVar(key))
	}

	viper.SetDefault(KeyLocale, "en")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyMinProgress, time.Second)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	viper.Set(key, value)
	return save()
}

// SiteURLs returns the configured manifest URLs in their configured order.
// SITEPACK_SITES may carry a comma or whitespace separated list.
func SiteURLs() []string {
	return stringList(KeySites)
}

// AddSite appends url to the site list unless it is already present.
func AddSite(url string) error {
	sites := SiteURLs()
	if slices.Contains(sites, url) {
		return nil
	}
	viper.Set(KeySites, append(sites, url))
	return save()
}

// RemoveSite deletes url from the site list. It reports whether url was present.
func RemoveSite(url string) (bool, error) {
	sites := SiteURLs()
	idx := slices.Index(sites, url)
	if idx < 0 {
		return false, nil
	}
	viper.Set(KeySites, slices.Delete(sites, idx, idx+1))
	return true, save()
}

// WorkspaceFolders returns the configured workspace folders. The first one is
// the install root.
func WorkspaceFolders() []string {
	return stringList(KeyWorkspaceFolders)
}

// Locale returns the language tag used to order packages by name.
func Locale() string {
	return viper.GetString(KeyLocale)
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

// MinProgress returns the minimum time a progress indicator stays visible.
func MinProgress() time.Duration {
	return viper.GetDuration(KeyMinProgress)
}

func stringList(key string) []string {
	var out []string
	for _, s := range viper.GetStringSlice(key) {
		for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\n' }) {
			out = append(out, f)
		}
	}
	return out
}

func save() error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
