// Package javascript implements filesystem discovery of JavaScript and
// TypeScript module graphs.
//
// The provider walks the root paths, collects files with supported
// extensions, extracts import/require specifiers, and resolves relative
// specifiers against the importing file. Bare specifiers (package
// imports) and specifiers that do not resolve to a discovered file are
// dropped - the returned graph only contains resolved edges.
package javascript

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/filerank/pkg/errors"
	"github.com/matzehuels/filerank/pkg/source"
)

// extensions lists the supported file suffixes in resolution-probe order.
// Explicit extensions win, then extension probing follows this order.
var extensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}

// skipDirs are directory basenames never traversed.
var skipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

// Provider discovers JavaScript/TypeScript module graphs from the local
// filesystem. The zero value is usable; New is provided for symmetry
// with other constructors.
type Provider struct{}

// New creates a filesystem provider.
func New() *Provider { return &Provider{} }

// Extensions returns the supported file-extension suffixes.
func (p *Provider) Extensions() []string {
	return slices.Clone(extensions)
}

// Discover walks the roots and returns one Module per source file,
// sorted by key for deterministic output. Edges keep source order and
// duplicates.
func (p *Provider) Discover(ctx context.Context, paths []string, opts source.Options) ([]source.Module, error) {
	keys, err := p.collect(ctx, paths, opts)
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	modules := make([]source.Module, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "discovery canceled")
		}
		data, err := os.ReadFile(key)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "read %s", key)
		}

		mod := source.Module{Key: key}
		for _, spec := range specifiers(string(data)) {
			if target, ok := resolve(known, key, spec); ok {
				mod.Dependencies = append(mod.Dependencies, source.Edge{Target: target})
			}
		}
		modules = append(modules, mod)
	}

	return modules, nil
}

// collect walks all roots and returns the sorted keys of qualifying files.
func (p *Provider) collect(ctx context.Context, paths []string, opts source.Options) ([]string, error) {
	ignored := make(map[string]bool, len(opts.IgnoreDirs))
	for _, d := range opts.IgnoreDirs {
		ignored[d] = true
	}

	seen := make(map[string]bool)
	var keys []string

	for _, root := range paths {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "resolve root %s", root)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeDiscovery, err, "stat root %s", root)
		}

		// A root may name a single file directly.
		if !info.IsDir() {
			if hasSupportedExt(abs) && !seen[abs] {
				seen[abs] = true
				keys = append(keys, abs)
			}
			continue
		}

		walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != abs && (skipDirs[name] || ignored[name] || strings.HasPrefix(name, ".")) {
					return filepath.SkipDir
				}
				return nil
			}
			if hasSupportedExt(path) && !seen[path] {
				seen[path] = true
				keys = append(keys, path)
			}
			return nil
		})
		if walkErr != nil {
			return nil, errors.Wrap(errors.ErrCodeDiscovery, walkErr, "walk %s", root)
		}
	}

	slices.Sort(keys)
	return keys, nil
}

func hasSupportedExt(path string) bool {
	return slices.Contains(extensions, filepath.Ext(path))
}

// resolve maps an import specifier to a discovered module key.
// Only relative specifiers are considered; everything else is a package
// import outside the project graph. Probe order: the specifier as
// written, then extension probing, then directory index probing.
func resolve(known map[string]bool, importer, spec string) (string, bool) {
	if !strings.HasPrefix(spec, "./") && !strings.HasPrefix(spec, "../") {
		return "", false
	}

	base := filepath.Clean(filepath.Join(filepath.Dir(importer), spec))

	if known[base] {
		return base, true
	}
	for _, ext := range extensions {
		if cand := base + ext; known[cand] {
			return cand, true
		}
	}
	for _, ext := range extensions {
		if cand := filepath.Join(base, "index"+ext); known[cand] {
			return cand, true
		}
	}
	return "", false
}
