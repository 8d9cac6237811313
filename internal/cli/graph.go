package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/filerank/pkg/errors"
	"github.com/matzehuels/filerank/pkg/graph"
	"github.com/matzehuels/filerank/pkg/pipeline"
	"github.com/matzehuels/filerank/pkg/render/nodelink"
)

// Output formats for the graph command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

var graphFormats = []string{formatJSON, formatDOT, formatSVG}

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	format     string // output format: "json", "dot", or "svg"
	output     string // output file path (stdout if empty)
	exts       string // comma-separated extension filter
	detailed   bool   // include weight and dependent counts in node labels
	noCache    bool   // disable the discovery cache
	refresh    bool   // bypass the discovery cache for this run
	configPath string // explicit config file (overrides discovery)
}

// graphCommand creates the graph export command.
//
// JSON export writes the raw discovered module graph, the same payload
// the discovery cache stores. DOT and SVG exports run the full ranking
// so nodes can be shaded by importance.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "graph [path...]",
		Short: "Export the discovered module graph",
		Long: `Export the project's module dependency graph.

Examples:
  filerank graph                        # JSON to stdout
  filerank graph -f dot -o deps.dot     # Graphviz DOT
  filerank graph -f svg -o deps.svg     # rendered diagram, shaded by rank`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}
			return c.runGraph(cmd, paths, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.exts, "ext", "", "extension filter, comma-separated (e.g., \".js,.ts\")")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include weights and counts in node labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the discovery cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the discovery cache for this run")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: .filerank.toml in the first path)")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, paths []string, opts *graphOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputFormat(opts.format, graphFormats); err != nil {
		return err
	}

	popts := pipeline.Options{
		Paths:      paths,
		Extensions: parseExtensions(opts.exts),
		Refresh:    opts.refresh,
	}
	noCache := opts.noCache
	if err := applyConfig(cmd, opts.configPath, paths, &popts, &noCache, logger); err != nil {
		return err
	}
	// Node shading needs rank order regardless of config.
	popts.DepsFirst = false

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	switch opts.format {
	case formatJSON:
		modules, err := runner.Discover(ctx, popts)
		if err != nil {
			return err
		}
		if err := graph.Write(modules, out); err != nil {
			return err
		}
	default:
		result, err := runner.Execute(ctx, popts)
		if err != nil {
			return err
		}
		dot := nodelink.ToDOT(result.Candidates, nodelink.Options{Detailed: opts.detailed})
		if opts.format == formatDOT {
			if _, err := fmt.Fprint(out, dot); err != nil {
				return err
			}
		} else {
			spin := newSpinnerWithContext(ctx, "Rendering SVG")
			spin.Start()
			svg, err := nodelink.RenderSVG(dot)
			spin.Stop()
			if err != nil {
				if spin.Cancelled() {
					return ctx.Err()
				}
				return err
			}
			if _, err := out.Write(svg); err != nil {
				return err
			}
		}
	}

	if opts.output != "" {
		printSuccess("Wrote %s graph", opts.format)
		printFile(opts.output)
		if opts.format == formatJSON {
			printNextStep("Render it", fmt.Sprintf("%s graph -f svg -o %s.svg", appName, opts.output))
		}
	}
	return nil
}
