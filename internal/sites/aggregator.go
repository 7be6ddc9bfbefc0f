package sites

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sitepack-labs/sitepack/internal/logging"
	"github.com/sitepack-labs/sitepack/internal/manifest"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Getter fetches a URL and returns its body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// URLSource returns the configured manifest URLs. It is called once per load.
type URLSource func() []string

// Aggregator loads site manifests and builds the display tree.
type Aggregator struct {
	getter Getter
	urls   URLSource
	lang   language.Tag
	logger *log.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLanguage sets the collation language used to order packages by name.
func WithLanguage(tag language.Tag) Option {
	return func(a *Aggregator) {
		a.lang = tag
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// NewAggregator creates an Aggregator reading URLs from urls and fetching them
// with getter.
func NewAggregator(getter Getter, urls URLSource, opts ...Option) *Aggregator {
	a := &Aggregator{
		getter: getter,
		urls:   urls,
		lang:   language.English,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load fetches every configured site and returns one site node per URL in
// configured order. It returns nil, nil when no URLs are configured. Any
// fetch or parse failure fails the whole load; remaining fetches are
// cancelled and their results discarded.
func (a *Aggregator) Load(ctx context.Context) ([]*Node, error) {
	urls := a.urls()
	if len(urls) == 0 {
		a.logger.Debug("no sites configured")
		return nil, nil
	}

	parsed := make([]*manifest.Site, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	for i, url := range urls {
		g.Go(func() error {
			site, err := a.loadSite(gctx, url)
			if err != nil {
				return err
			}
			parsed[i] = site
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	coll := collate.New(a.lang)
	nodes := make([]*Node, len(parsed))
	for i, site := range parsed {
		nodes[i] = buildSiteNode(site, coll)
	}
	return nodes, nil
}

func (a *Aggregator) loadSite(ctx context.Context, url string) (*manifest.Site, error) {
	body, err := a.getter.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("loading site: %w", err)
	}

	site, err := manifest.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing site %s: %w", url, err)
	}

	a.logger.Debug("site loaded", "url", url, "name", site.Name, "packages", len(site.Packages))
	return site, nil
}
