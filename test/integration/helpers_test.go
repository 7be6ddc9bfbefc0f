//go:build integration

package integration_test

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
)

// testEnv holds an isolated site server and workspace.
type testEnv struct {
	SiteDir      string // files served by the site server
	WorkspaceDir string // install root
	Server       *httptest.Server
	Requests     atomic.Int32
}

// setupTestEnv creates temp directories and an HTTP server serving SiteDir.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		SiteDir:      t.TempDir(),
		WorkspaceDir: t.TempDir(),
	}

	files := http.FileServer(http.Dir(env.SiteDir))
	env.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.Requests.Add(1)
		files.ServeHTTP(w, r)
	}))
	t.Cleanup(env.Server.Close)

	return env
}

// URL returns the server URL for a path under SiteDir.
func (e *testEnv) URL(path string) string {
	return e.Server.URL + "/" + strings.TrimPrefix(path, "/")
}

// testPackage describes a package published by publishSite.
type testPackage struct {
	Category string
	Name     string
	Version  string
	Files    map[string]string // archive contents
}

// publishSite writes <name>.xml and one <package>.zip per package into
// SiteDir. Returns the manifest URL.
func publishSite(t *testing.T, env *testEnv, file, siteName string, pkgs ...testPackage) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\"?>\n<site name=%q>\n", siteName)
	for _, p := range pkgs {
		archive := p.Name + ".zip"
		writeFile(t, filepath.Join(env.SiteDir, archive), string(buildZip(t, p.Files)))
		fmt.Fprintf(&b, "  <package category=%q name=%q version=%q>\n", p.Category, p.Name, p.Version)
		fmt.Fprintf(&b, "    <description>%s package</description>\n", p.Name)
		fmt.Fprintf(&b, "    <entry url=%q/>\n", env.URL(archive))
		b.WriteString("  </package>\n")
	}
	b.WriteString("</site>\n")

	writeFile(t, filepath.Join(env.SiteDir, file), b.String())
	return env.URL(file)
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("adding %s to zip: %v", name, err)
		}
		if _, err := w.Write([]byte(files[name])); err != nil {
			t.Fatalf("writing %s to zip: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

type answer bool

func (a answer) Confirm(string) (bool, error) { return bool(a), nil }

type workspace string

func (w workspace) Root() (string, bool) { return string(w), w != "" }

type notes struct {
	infos, errors []string
}

func (n *notes) Info(msg string)  { n.infos = append(n.infos, msg) }
func (n *notes) Error(msg string) { n.errors = append(n.errors, msg) }
