package rank

import "slices"

// Sequence re-linearizes a rank-sorted candidate list so that each
// candidate's own dependencies appear before it, recursing depth-first
// with rank order as the tie-break. The result is a permutation of
// ranked: same candidates, new order.
//
// One seen set is shared across the whole call, which both prevents
// duplicates and breaks cycles: the cycle member reached first by rank
// order is emitted without waiting for its not-yet-seen partners, so
// this is dependency-first only for acyclic subgraphs, not a
// topological sort.
func (s *Set) Sequence(ranked []*Candidate) []*Candidate {
	seen := make(map[string]bool, len(ranked))
	out := make([]*Candidate, 0, len(ranked))

	var visit func(c *Candidate)
	visit = func(c *Candidate) {
		if seen[c.Key] {
			return
		}

		var pending []*Candidate
		queued := make(map[string]bool)
		for _, dep := range c.Dependencies {
			if seen[dep] || queued[dep] {
				continue
			}
			target, ok := s.index[dep]
			if !ok {
				continue
			}
			queued[dep] = true
			pending = append(pending, target)
		}
		slices.SortStableFunc(pending, Compare)

		seen[c.Key] = true
		for _, dep := range pending {
			visit(dep)
		}
		out = append(out, c)
	}

	for _, c := range ranked {
		visit(c)
	}
	return out
}
