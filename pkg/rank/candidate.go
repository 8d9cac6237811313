package rank

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/filerank/pkg/errors"
	"github.com/matzehuels/filerank/pkg/source"
)

// Candidate is one ranking node, representing a single source file.
// Candidates are created by Build and mutated only by Solve; they are
// discarded at the end of a run.
type Candidate struct {
	// Key uniquely identifies the candidate, equal to the module key.
	Key string

	// Lines is the physical line count of the file, counted once at
	// construction and treated as immutable input afterwards.
	Lines int

	// Dependencies lists resolved target keys filtered by the active
	// extension set. Duplicate targets are preserved: two imports of
	// the same file are two edges.
	Dependencies []string

	// Dependents counts how many edges of other modules point at this
	// candidate. It is derived from the raw, unfiltered module edges,
	// so it can exceed what the extension filter admits into ranking.
	Dependents int

	// Weight is the stationary importance score assigned by Solve,
	// nominally in [0,1].
	Weight float64

	// links maps a target key to its normalized share of this
	// candidate's outbound mass. Populated and owned by Solve.
	links map[string]float64

	// outbound is the accumulated raw out-weight used to normalize
	// links. Zero marks a dangling candidate.
	outbound float64
}

// Set is the exclusively owned candidate collection for one ranking
// run. Candidates keep their provider encounter order, which acts as
// the final tie-break for deterministic output.
type Set struct {
	candidates []*Candidate
	index      map[string]*Candidate
}

// Len returns the number of candidates.
func (s *Set) Len() int { return len(s.candidates) }

// Candidates returns the candidates in encounter order.
// The returned slice is shared; callers must not reorder it.
func (s *Set) Candidates() []*Candidate { return s.candidates }

// ByKey returns the candidate with the given key.
func (s *Set) ByKey(key string) (*Candidate, bool) {
	c, ok := s.index[key]
	return c, ok
}

// BuildOptions configures candidate construction.
type BuildOptions struct {
	// Extensions is the suffix filter applied to dependency edges.
	// Empty keeps every edge (the caller is expected to default this
	// to the provider's full supported set).
	Extensions []string

	// CountLines overrides how a module's physical line count is
	// obtained. Nil reads the file at the module key from disk.
	// Failures abort the whole build with IO_ERROR.
	CountLines func(key string) (int, error)
}

// Build converts provider modules into a candidate set.
//
// Line counts are read concurrently (the only parallel phase of a run)
// but Build returns only once every candidate is fully populated, so
// the set is immutable input by the time Solve sees it. The dependents
// pass runs over the raw module edges of every other module, using the
// same key matching as construction.
func Build(ctx context.Context, modules []source.Module, opts BuildOptions) (*Set, error) {
	countLines := opts.CountLines
	if countLines == nil {
		countLines = countFileLines
	}

	set := &Set{
		candidates: make([]*Candidate, 0, len(modules)),
		index:      make(map[string]*Candidate, len(modules)),
	}

	for _, mod := range modules {
		c := &Candidate{
			Key:   mod.Key,
			links: make(map[string]float64),
		}
		for _, edge := range mod.Dependencies {
			if matchesExtension(edge.Target, opts.Extensions) {
				c.Dependencies = append(c.Dependencies, edge.Target)
			}
		}
		set.candidates = append(set.candidates, c)
		set.index[c.Key] = c
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, c := range set.candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			lines, err := countLines(c.Key)
			if err != nil {
				return errors.Wrap(errors.ErrCodeIO, err, "count lines of %s", c.Key)
			}
			c.Lines = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Dependents are driven by the raw edges, not the filtered
	// Dependencies field, and a module never counts toward its own
	// dependents.
	for _, mod := range modules {
		for _, edge := range mod.Dependencies {
			if edge.Target == mod.Key {
				continue
			}
			if target, ok := set.index[edge.Target]; ok {
				target.Dependents++
			}
		}
	}

	return set, nil
}

// matchesExtension reports whether key ends with one of the suffixes.
// An empty filter matches everything.
func matchesExtension(key string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, ext := range exts {
		if strings.HasSuffix(key, ext) {
			return true
		}
	}
	return false
}

// countFileLines counts physical lines: the number of newline bytes,
// plus one for a trailing fragment without a newline. An empty file has
// zero lines.
func countFileLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	n := bytes.Count(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n, nil
}
