package graph

import (
	"slices"

	"github.com/matzehuels/filerank/pkg/source"
)

// Graph is the canonical serialization format for discovered module
// graphs. Used for the discovery cache and for machine-readable graph
// export.
//
// The format is designed for round-trip fidelity: discover → export →
// re-import produces an identical module list, including edge order
// and duplicate edges.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one module in the serialized graph.
type Node struct {
	ID string `json:"id"`
}

// Edge is a directed dependency edge between two modules.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// FromModules converts a provider module list to its serialization
// format. Nodes are sorted by ID for deterministic output; edges keep
// per-module source order.
func FromModules(modules []source.Module) Graph {
	sorted := slices.Clone(modules)
	slices.SortFunc(sorted, func(a, b source.Module) int {
		if a.Key < b.Key {
			return -1
		}
		if a.Key > b.Key {
			return 1
		}
		return 0
	})

	out := Graph{Nodes: make([]Node, len(sorted))}
	for i, m := range sorted {
		out.Nodes[i] = Node{ID: m.Key}
		for _, e := range m.Dependencies {
			out.Edges = append(out.Edges, Edge{From: m.Key, To: e.Target})
		}
	}
	return out
}

// ToModules converts a serialized graph back to a provider module
// list. Edge order within a module is preserved, duplicates included.
func ToModules(g Graph) []source.Module {
	byKey := make(map[string]int, len(g.Nodes))
	modules := make([]source.Module, len(g.Nodes))
	for i, n := range g.Nodes {
		modules[i] = source.Module{Key: n.ID}
		byKey[n.ID] = i
	}
	for _, e := range g.Edges {
		if i, ok := byKey[e.From]; ok {
			modules[i].Dependencies = append(modules[i].Dependencies, source.Edge{Target: e.To})
		}
	}
	return modules
}
