package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/filerank/pkg/rank"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes weight and dependent counts in node labels.
	// When false, only the module key is shown.
	Detailed bool
}

// ToDOT converts a ranked candidate list to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Candidates must be in rank order: node shading is derived from each
// candidate's position, so the top third of the ranking is drawn
// darkest. Edges to modules outside the candidate set are omitted.
func ToDOT(ranked []*rank.Candidate, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	known := make(map[string]bool, len(ranked))
	for _, c := range ranked {
		known[c.Key] = true
	}

	for i, c := range ranked {
		label := fmtLabel(c, opts.Detailed)
		attrs := fmtAttrs(label, bucket(i, len(ranked)))
		fmt.Fprintf(&buf, "  %q [%s];\n", c.Key, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range ranked {
		seen := make(map[string]bool, len(c.Dependencies))
		for _, dep := range c.Dependencies {
			if !known[dep] || seen[dep] {
				continue
			}
			seen[dep] = true
			fmt.Fprintf(&buf, "  %q -> %q;\n", c.Key, dep)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// bucket maps a rank position to one of three shading tiers.
func bucket(pos, total int) int {
	if total == 0 {
		return 2
	}
	switch {
	case pos*3 < total:
		return 0
	case pos*3 < 2*total:
		return 1
	default:
		return 2
	}
}

func fmtLabel(c *rank.Candidate, detailed bool) string {
	if !detailed {
		return c.Key
	}

	parts := []string{
		fmt.Sprintf("weight: %.6f", c.Weight),
		fmt.Sprintf("dependents: %d", c.Dependents),
		fmt.Sprintf("lines: %d", c.Lines),
	}

	return c.Key + "\n" + strings.Join(parts, "\n")
}

var tierFills = [3]string{"#f4a261", "#e9c46a", "white"}

func fmtAttrs(label string, tier int) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if fill := tierFills[tier]; fill != "white" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", fill))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
