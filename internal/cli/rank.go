package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/filerank/pkg/config"
	"github.com/matzehuels/filerank/pkg/errors"
	"github.com/matzehuels/filerank/pkg/pipeline"
)

// Output formats for the rank command.
const (
	formatTable = "table"
	formatJSON  = "json"
)

var rankFormats = []string{formatTable, formatJSON}

// rankOpts holds the command-line flags for the rank command.
type rankOpts struct {
	exts        string // comma-separated extension filter (e.g., ".js,.ts")
	depsFirst   bool   // emit dependencies before their dependents
	format      string // output format: "table" or "json"
	top         int    // limit output to the N highest-ranked files (0 = all)
	interactive bool   // browse the ranking in an interactive list
	noCache     bool   // disable the discovery cache
	refresh     bool   // bypass the discovery cache for this run
	output      string // output file path (stdout if empty)
	configPath  string // explicit config file (overrides discovery)
}

// rankCommand creates the rank command, the main entry point of the CLI.
//
// Rankings are computed from the project's internal dependency graph: a
// file that many other files import (directly or transitively) scores
// higher than a leaf. A .filerank.toml in the first root path provides
// defaults; explicit flags always win.
func (c *CLI) rankCommand() *cobra.Command {
	opts := rankOpts{format: formatTable}

	cmd := &cobra.Command{
		Use:   "rank [path...]",
		Short: "Rank source files by importance",
		Long: `Rank every source file under the given paths by how much the rest
of the code depends on it.

Examples:
  filerank rank                          # rank the current directory
  filerank rank ./src ./lib              # multiple roots
  filerank rank --ext .ts,.tsx           # TypeScript only
  filerank rank --deps-first             # reading order: dependencies first
  filerank rank --format json -o out.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			return c.runRank(cmd, paths, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.exts, "ext", "", "extension filter, comma-separated (e.g., \".js,.ts\")")
	cmd.Flags().BoolVar(&opts.depsFirst, "deps-first", false, "order output so dependencies come before dependents")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table (default), json")
	cmd.Flags().IntVar(&opts.top, "top", 0, "show only the N highest-ranked files")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the ranking interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the discovery cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the discovery cache for this run")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: .filerank.toml in the first path)")

	return cmd
}

func (c *CLI) runRank(cmd *cobra.Command, paths []string, opts *rankOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputFormat(opts.format, rankFormats); err != nil {
		return err
	}

	popts := pipeline.Options{
		Paths:      paths,
		Extensions: parseExtensions(opts.exts),
		DepsFirst:  opts.depsFirst,
		Refresh:    opts.refresh,
	}
	noCache := opts.noCache
	if err := applyConfig(cmd, opts.configPath, paths, &popts, &noCache, logger); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Ranked %d files with %d dependencies", result.Stats.ModuleCount, result.Stats.EdgeCount))

	if opts.interactive {
		return browseRanking(result.Candidates)
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case formatJSON:
		if err := writeRankedJSON(out, result.Candidates, opts.top); err != nil {
			return err
		}
	default:
		fmt.Fprintln(out, renderRankTable(result.Candidates, opts.top))
		if opts.output == "" {
			printStats(result.Stats.ModuleCount, result.Stats.EdgeCount, result.CacheInfo.GraphHit)
		}
	}

	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// applyConfig layers .filerank.toml settings under the explicit flags.
// A setting from the config file applies only when the corresponding
// flag was not passed on the command line. An explicit cfgPath skips
// discovery and must exist.
func applyConfig(cmd *cobra.Command, cfgPath string, paths []string, popts *pipeline.Options, noCache *bool, logger interface{ Debugf(string, ...any) }) error {
	path := cfgPath
	if path == "" {
		var found bool
		if path, found = config.Locate(paths); !found {
			return nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded config from %s", path)

	if len(popts.Extensions) == 0 {
		popts.Extensions = cfg.Extensions
	}
	popts.IgnoreDirs = cfg.IgnoreDirs
	if !cmd.Flags().Changed("deps-first") {
		popts.DepsFirst = cfg.DepsFirst
	}
	if cfg.Cache.TTL > 0 {
		popts.CacheTTL = time.Duration(cfg.Cache.TTL)
	}
	if cfg.Cache.Disabled && !cmd.Flags().Changed("no-cache") {
		*noCache = true
	}
	return nil
}

// parseExtensions splits a comma-separated extension list, dropping
// empty entries and surrounding whitespace.
func parseExtensions(s string) []string {
	if s == "" {
		return nil
	}
	var exts []string
	for _, ext := range strings.Split(s, ",") {
		if ext = strings.TrimSpace(ext); ext != "" {
			exts = append(exts, ext)
		}
	}
	return exts
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
