package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sitepack-labs/sitepack/internal/logging"
	"github.com/sitepack-labs/sitepack/internal/manifest"
	"golang.org/x/sync/errgroup"
)

// DefaultMinProgress keeps the progress indicator from flashing on fast
// downloads.
const DefaultMinProgress = time.Second

// Getter fetches a URL and returns its body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Installer downloads and extracts packages.
type Installer struct {
	getter      Getter
	workspace   Workspace
	prompter    Prompter
	progress    Progress
	minProgress time.Duration
	concurrency int
	logger      *log.Logger
}

// Option configures an Installer.
type Option func(*Installer)

// WithProgress sets the progress indicator wrapped around the download.
func WithProgress(p Progress) Option {
	return func(i *Installer) {
		i.progress = p
	}
}

// WithMinProgress sets how long the progress indicator stays up at minimum.
func WithMinProgress(d time.Duration) Option {
	return func(i *Installer) {
		i.minProgress = d
	}
}

// WithConcurrency sets the number of archive entries extracted at once.
func WithConcurrency(n int) Option {
	return func(i *Installer) {
		i.concurrency = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(i *Installer) {
		i.logger = l
	}
}

// New creates an Installer.
func New(getter Getter, ws Workspace, prompter Prompter, opts ...Option) *Installer {
	i := &Installer{
		getter:      getter,
		workspace:   ws,
		prompter:    prompter,
		progress:    noProgress{},
		minProgress: DefaultMinProgress,
		concurrency: DefaultExtractConcurrency,
		logger:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Install downloads pkg's archive and extracts it into <workspace>/<name>.
// An existing destination is only overwritten after the prompter confirms.
func (i *Installer) Install(ctx context.Context, pkg manifest.Package) Result {
	res := Result{Package: pkg.Name}

	root, ok := i.workspace.Root()
	if !ok {
		res.Status = StatusNoWorkspace
		return res
	}

	dest, err := destination(root, pkg.Name)
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Path = dest

	if _, err := os.Stat(dest); err == nil {
		yes, err := i.prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", dest))
		if err != nil {
			i.logger.Debug("overwrite prompt failed", "err", err)
		}
		if err != nil || !yes {
			res.Status = StatusDeclined
			return res
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("checking %s: %w", dest, err)
		return res
	}

	title := fmt.Sprintf("Downloading %s", pkg.Name)
	err = i.progress.Run(ctx, title, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return i.download(gctx, pkg, dest)
		})
		g.Go(func() error {
			wait(gctx, i.minProgress)
			return nil
		})
		return g.Wait()
	})
	if err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	i.logger.Debug("package installed", "package", pkg.Name, "path", dest)
	res.Status = StatusInstalled
	return res
}

// destination returns <root>/<name>. The name must be a single path element
// so the package lands in its own directory directly under root.
func destination(root, name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.IsAbs(name) ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("package name %q is not a valid directory name", name)
	}
	return filepath.Join(root, name), nil
}

func (i *Installer) download(ctx context.Context, pkg manifest.Package, dest string) error {
	if pkg.URL == "" {
		return fmt.Errorf("package %s has no download URL", pkg.Name)
	}

	data, err := i.getter.Get(ctx, pkg.URL)
	if err != nil {
		return err
	}
	i.logger.Debug("archive downloaded", "package", pkg.Name, "bytes", len(data))

	return Extract(ctx, data, dest, i.concurrency)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
