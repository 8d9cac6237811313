// Package rank implements the file ranking core: building weighted
// candidates from a discovered module graph, solving for stationary
// importance weights with a damped power iteration, and optionally
// linearizing the result so dependencies precede their dependents.
//
// The three stages run in strict order over one exclusively owned
// candidate set:
//
//	set, err := rank.Build(ctx, modules, rank.BuildOptions{Extensions: exts})
//	ranked, err := rank.Solve(set)
//	ordered := set.Sequence(ranked) // optional deps-first pass
//
// Weights converge to a probability distribution: after Solve, every
// candidate's weight is non-negative and the weights of a fully
// resolved graph sum to one within floating-point tolerance.
package rank
