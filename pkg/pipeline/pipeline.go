// Package pipeline provides the core ranking pipeline for filerank.
//
// This package implements the complete discover → rank → sequence
// pipeline used by the CLI and by library consumers. Centralizing this
// logic keeps behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages with full barriers in between:
//
//  1. Discover: the module graph provider walks the root paths and
//     returns a static module graph (cached between runs)
//  2. Rank: build candidates (line counts, extension filter,
//     dependents) and solve for stationary importance weights
//  3. Sequence: optionally re-linearize the ranking so dependencies
//     precede their dependents
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Paths:     []string{"./src"},
//	    DepsFirst: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, c := range result.Candidates {
//	    fmt.Printf("%s %f\n", c.Key, c.Weight)
//	}
package pipeline

import (
	"time"

	"github.com/matzehuels/filerank/pkg/cache"
	"github.com/matzehuels/filerank/pkg/errors"
	"github.com/matzehuels/filerank/pkg/rank"
	"github.com/matzehuels/filerank/pkg/source"
	"github.com/matzehuels/filerank/pkg/source/javascript"
)

// Options contains all configuration for one ranking run.
type Options struct {
	// Paths lists the root locations to search. Required, non-empty.
	Paths []string

	// Extensions restricts ranking edges to targets with these
	// suffixes. Empty defaults to the provider's full supported set.
	Extensions []string

	// IgnoreDirs lists extra directory basenames skipped during
	// discovery.
	IgnoreDirs []string

	// DepsFirst applies the dependency sequencer to the ranked output.
	DepsFirst bool

	// Refresh bypasses the discovery cache for this run.
	Refresh bool

	// CacheTTL bounds cached discovery results. Zero means
	// cache.DefaultTTL.
	CacheTTL time.Duration

	// Provider discovers the module graph. Nil defaults to the
	// JavaScript/TypeScript filesystem provider.
	Provider source.Provider
}

// ValidateAndSetDefaults checks required fields and fills defaults in
// place.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidatePaths(o.Paths); err != nil {
		return err
	}
	if err := errors.ValidateExtensions(o.Extensions); err != nil {
		return err
	}
	if o.Provider == nil {
		o.Provider = javascript.New()
	}
	if len(o.Extensions) == 0 {
		o.Extensions = o.Provider.Extensions()
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = cache.DefaultTTL
	}
	return nil
}

// Stats reports per-stage timing and graph size for one run.
type Stats struct {
	DiscoverTime time.Duration
	RankTime     time.Duration
	SequenceTime time.Duration
	ModuleCount  int
	EdgeCount    int
}

// CacheInfo reports cache hits for one run.
type CacheInfo struct {
	GraphHit bool
}

// Result holds the outcome of a pipeline run. Candidates are ordered:
// rank order, or dependency-first order when DepsFirst was set.
type Result struct {
	Candidates []*rank.Candidate
	Stats      Stats
	CacheInfo  CacheInfo

	// GraphHash identifies the discovered graph (hash of its
	// serialized form), useful for change detection across runs.
	GraphHash string
}
