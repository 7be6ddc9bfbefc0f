package sites

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/sitepack-labs/sitepack/internal/logging"
)

// State is the pair of context flags a tree view exposes. The zero value
// means a load is in progress or has not started.
type State struct {
	Loaded  bool
	Errored bool
}

func (s State) String() string {
	switch {
	case s.Errored:
		return "errored"
	case s.Loaded:
		return "loaded"
	default:
		return "idle"
	}
}

// Loader produces site nodes. *Aggregator implements it.
type Loader interface {
	Load(ctx context.Context) ([]*Node, error)
}

// Browser holds the current tree and drives a view through reloads.
type Browser struct {
	loader Loader
	logger *log.Logger

	mu       sync.Mutex
	roots    []*Node
	state    State
	onState  []func(State)
	onChange []func([]*Node)
}

// NewBrowser creates a Browser over loader.
func NewBrowser(loader Loader, logger *log.Logger) *Browser {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Browser{loader: loader, logger: logger}
}

// OnState registers fn to receive every state transition.
func (b *Browser) OnState(fn func(State)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onState = append(b.onState, fn)
}

// OnChange registers fn to receive the new roots after each successful load.
func (b *Browser) OnChange(fn func([]*Node)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onChange = append(b.onChange, fn)
}

// Refresh reloads the whole tree. The previous tree is discarded; node
// identity does not survive a reload. On failure the previous roots are
// cleared and the error is returned after being logged.
func (b *Browser) Refresh(ctx context.Context) error {
	b.setState(State{})

	roots, err := b.loader.Load(ctx)
	if err != nil {
		b.logger.Error("loading sites failed", "err", err)
		b.mu.Lock()
		b.roots = nil
		b.mu.Unlock()
		b.setState(State{Errored: true})
		return err
	}

	b.mu.Lock()
	b.roots = roots
	listeners := append([]func([]*Node){}, b.onChange...)
	b.mu.Unlock()

	b.setState(State{Loaded: true})
	for _, fn := range listeners {
		fn(roots)
	}
	return nil
}

// Roots returns the tree from the last successful load.
func (b *Browser) Roots() []*Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.roots
}

// State returns the current state flags.
func (b *Browser) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// FindPackage returns the package node at site/category/name. An empty site or
// category matches any. It fails when nothing or more than one node matches.
func (b *Browser) FindPackage(site, category, name string) (*Node, error) {
	var matches []*Node
	for _, s := range b.Roots() {
		if site != "" && s.Label != site {
			continue
		}
		for _, c := range s.Children {
			if category != "" && c.Label != category {
				continue
			}
			for _, p := range c.Children {
				if p.Label == name {
					matches = append(matches, p)
				}
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("package %q not found", name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("package %q is ambiguous: %d matches, qualify it with site and category", name, len(matches))
	}
}

func (b *Browser) setState(s State) {
	b.mu.Lock()
	b.state = s
	listeners := append([]func(State){}, b.onState...)
	b.mu.Unlock()

	b.logger.Debug("view state", "state", s)
	for _, fn := range listeners {
		fn(s)
	}
}
