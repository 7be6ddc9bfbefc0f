// Package sites aggregates remote site manifests into a display tree.
//
// An Aggregator fetches every configured manifest URL concurrently, parses
// each into a manifest.Site and reshapes it into three levels of nodes:
// site, category and package. The load is all or nothing: one failed site
// fails the whole load. A Browser wraps the Aggregator with the loaded and
// errored state flags a tree view needs.
package sites
