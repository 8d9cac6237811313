package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/filerank/pkg/cache"
	"github.com/matzehuels/filerank/pkg/graph"
	"github.com/matzehuels/filerank/pkg/observability"
	"github.com/matzehuels/filerank/pkg/rank"
	"github.com/matzehuels/filerank/pkg/source"
)

// Runner encapsulates pipeline execution with discovery caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete discover → rank → sequence pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.Logger

	result := &Result{}

	// Stage 1: Discover
	discoverStart := time.Now()
	modules, graphHit, err := r.discover(ctx, opts)
	result.Stats.DiscoverTime = time.Since(discoverStart)
	if err != nil {
		return nil, err
	}
	result.CacheInfo.GraphHit = graphHit
	result.Stats.ModuleCount = len(modules)
	for _, m := range modules {
		result.Stats.EdgeCount += len(m.Dependencies)
	}
	if data, err := graph.Marshal(modules); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	logger.Info("discovered modules",
		"modules", result.Stats.ModuleCount,
		"edges", result.Stats.EdgeCount,
		"cached", graphHit,
		"duration", result.Stats.DiscoverTime)

	// Stage 2: Rank
	rankStart := time.Now()
	observability.Pipeline().OnRankStart(ctx, len(modules))
	set, err := rank.Build(ctx, modules, rank.BuildOptions{Extensions: opts.Extensions})
	if err != nil {
		observability.Pipeline().OnRankComplete(ctx, len(modules), time.Since(rankStart), err)
		return nil, err
	}
	ranked, err := rank.Solve(set)
	observability.Pipeline().OnRankComplete(ctx, len(modules), time.Since(rankStart), err)
	if err != nil {
		return nil, err
	}
	result.Candidates = ranked
	result.Stats.RankTime = time.Since(rankStart)

	logger.Info("ranked candidates",
		"candidates", len(ranked),
		"duration", result.Stats.RankTime)

	// Stage 3: Sequence (optional)
	if opts.DepsFirst {
		seqStart := time.Now()
		observability.Pipeline().OnSequenceStart(ctx, len(ranked))
		result.Candidates = set.Sequence(ranked)
		result.Stats.SequenceTime = time.Since(seqStart)
		observability.Pipeline().OnSequenceComplete(ctx, len(ranked), result.Stats.SequenceTime)

		logger.Info("sequenced dependencies first",
			"duration", result.Stats.SequenceTime)
	}

	return result, nil
}

// Discover resolves the module graph for the given options, using the
// cache unless Refresh is set. Exposed for the graph export command,
// which needs modules without ranking them.
func (r *Runner) Discover(ctx context.Context, opts Options) ([]source.Module, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	modules, _, err := r.discover(ctx, opts)
	return modules, err
}

func (r *Runner) discover(ctx context.Context, opts Options) ([]source.Module, bool, error) {
	key := r.Keyer.GraphKey(opts.Paths, cache.GraphKeyOpts{
		Extensions: opts.Extensions,
		IgnoreDirs: opts.IgnoreDirs,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if modules, err := graph.Unmarshal(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return modules, true, nil
			}
			// Corrupt entry: drop it and rediscover.
			_ = r.Cache.Delete(ctx, key)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "graph")

	observability.Pipeline().OnDiscoverStart(ctx, opts.Paths)
	start := time.Now()
	modules, err := opts.Provider.Discover(ctx, opts.Paths, source.Options{
		IgnoreDirs: opts.IgnoreDirs,
	})
	observability.Pipeline().OnDiscoverComplete(ctx, opts.Paths, len(modules), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := graph.Marshal(modules); err == nil {
		if err := r.Cache.Set(ctx, key, data, opts.CacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}

	return modules, false, nil
}
