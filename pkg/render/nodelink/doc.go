// Package nodelink renders ranked module graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz,
// where modules appear as boxes connected by dependency arrows. Node
// fill encodes rank: the most important modules are drawn darkest.
//
// # Usage
//
// Convert a ranked candidate list to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(ranked, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes. Edges point from a module to its dependencies.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
