package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/sitepack-labs/sitepack/internal/fetch"
)

// createTestZip builds an archive from name → content. Names ending in "/"
// become directory entries.
func createTestZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate}
		if name[len(name)-1] == '/' {
			hdr.SetMode(os.ModeDir | 0755)
		} else {
			hdr.SetMode(0640)
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newArchiveServer(t *testing.T, status int, body []byte) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func testGetter(server *httptest.Server) *fetch.Client {
	return fetch.New(fetch.WithHTTPClient(server.Client()))
}

type fakeWorkspace struct {
	root string
}

func (w fakeWorkspace) Root() (string, bool) {
	return w.root, w.root != ""
}

type fakePrompter struct {
	answer bool
	err    error
	asked  []string
}

func (p *fakePrompter) Confirm(q string) (bool, error) {
	p.asked = append(p.asked, q)
	return p.answer, p.err
}

type recordingNotifier struct {
	infos  []string
	errors []string
}

func (n *recordingNotifier) Info(msg string)  { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Error(msg string) { n.errors = append(n.errors, msg) }

type recordingProgress struct {
	titles []string
}

func (p *recordingProgress) Run(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	p.titles = append(p.titles, title)
	return fn(ctx)
}
