package config

import (
	"os"
	"slices"
	"testing"
	"time"

	"github.com/sitepack-labs/sitepack/internal/branding"
	"github.com/spf13/viper"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	Load()
	return home
}

func TestSiteURLs_Empty(t *testing.T) {
	setupHome(t)

	if got := SiteURLs(); len(got) != 0 {
		t.Errorf("SiteURLs() = %v, want empty", got)
	}
}

func TestAddSite_PreservesOrderAndDeduplicates(t *testing.T) {
	setupHome(t)

	for _, u := range []string{"https://b.example/site.xml", "https://a.example/site.xml", "https://b.example/site.xml"} {
		if err := AddSite(u); err != nil {
			t.Fatalf("AddSite(%s): %v", u, err)
		}
	}

	want := []string{"https://b.example/site.xml", "https://a.example/site.xml"}
	if got := SiteURLs(); !slices.Equal(got, want) {
		t.Errorf("SiteURLs() = %v, want %v", got, want)
	}

	if _, err := os.Stat(FilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}

func TestAddSite_PersistsAcrossLoad(t *testing.T) {
	setupHome(t)

	if err := AddSite("https://a.example/site.xml"); err != nil {
		t.Fatalf("AddSite: %v", err)
	}

	viper.Reset()
	Load()

	if got := SiteURLs(); !slices.Equal(got, []string{"https://a.example/site.xml"}) {
		t.Errorf("SiteURLs() after reload = %v", got)
	}
}

func TestRemoveSite(t *testing.T) {
	setupHome(t)

	_ = AddSite("https://a.example/site.xml")
	_ = AddSite("https://b.example/site.xml")

	removed, err := RemoveSite("https://a.example/site.xml")
	if err != nil {
		t.Fatalf("RemoveSite: %v", err)
	}
	if !removed {
		t.Error("expected site to be removed")
	}

	removed, err = RemoveSite("https://missing.example/site.xml")
	if err != nil {
		t.Fatalf("RemoveSite: %v", err)
	}
	if removed {
		t.Error("expected missing site not to be reported as removed")
	}

	if got := SiteURLs(); !slices.Equal(got, []string{"https://b.example/site.xml"}) {
		t.Errorf("SiteURLs() = %v", got)
	}
}

func TestSiteURLs_FromEnv(t *testing.T) {
	setupHome(t)
	t.Setenv(branding.EnvVar(KeySites), "https://a.example/site.xml,https://b.example/site.xml")

	want := []string{"https://a.example/site.xml", "https://b.example/site.xml"}
	if got := SiteURLs(); !slices.Equal(got, want) {
		t.Errorf("SiteURLs() = %v, want %v", got, want)
	}
}

func TestDefaults(t *testing.T) {
	setupHome(t)

	if got := Locale(); got != "en" {
		t.Errorf("Locale() = %q, want en", got)
	}
	if got := LogLevel(); got != "info" {
		t.Errorf("LogLevel() = %q, want info", got)
	}
	if got := MinProgress(); got != time.Second {
		t.Errorf("MinProgress() = %v, want 1s", got)
	}
}

func TestSetAndGet(t *testing.T) {
	setupHome(t)

	if err := Set(KeyLocale, "de"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(KeyLocale); got != "de" {
		t.Errorf("Get(locale) = %q, want de", got)
	}
}
