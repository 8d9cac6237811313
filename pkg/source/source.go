// Package source defines the module graph provider boundary.
//
// A Provider discovers the source files of a project and their resolved
// dependency edges, returning a flat, static module graph. The ranking
// core depends only on this interface, so synthetic graphs can drive
// tests without touching the filesystem.
//
// Providers resolve module specifiers themselves; the graph they return
// contains only resolved target keys. Each invocation produces a fresh,
// complete snapshot - there is no incremental update contract.
package source

import (
	"context"
)

// Module is one discovered source file with its resolved dependency
// edges. Modules are immutable once returned by a Provider.
type Module struct {
	// Key uniquely identifies the module within one discovery run,
	// typically the resolved absolute file path.
	Key string

	// Dependencies lists resolved dependency edges in source order.
	// Duplicate targets are preserved: importing the same file twice
	// yields two edges.
	Dependencies []Edge
}

// Edge is a directed reference to another module by its resolved key.
type Edge struct {
	Target string
}

// Options configures a discovery run. The zero value requests provider
// defaults.
type Options struct {
	// IgnoreDirs lists directory basenames to skip during traversal,
	// in addition to the provider's built-in skip set.
	IgnoreDirs []string
}

// Provider discovers the module graph under a set of root paths.
type Provider interface {
	// Discover walks the given roots and returns one Module per
	// qualifying source file. Failures surface as DISCOVERY_ERROR.
	Discover(ctx context.Context, paths []string, opts Options) ([]Module, error)

	// Extensions returns the file-extension suffixes the provider
	// supports, in resolution-probe order.
	Extensions() []string
}
