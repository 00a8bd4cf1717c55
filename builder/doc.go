// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs for the enumerator.
//
// Constructors (Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
// PlatonicSolid, RandomSparse, RandomRegular) write vertices 0..n-1 and
// their edges into a shared Draft. BuildGraph runs them in order and freezes
// the draft into an immutable core.Graph. Constructors that touch the same
// vertex indices overlap; a repeated edge is recorded once.
//
// Stochastic constructors draw from the RNG set with WithSeed or WithRand,
// so equal seeds give equal graphs.
//
// Parse maps the textual form used by the command line ("cycle:5",
// "grid:3,4", "random:12,0.3") onto a Constructor.
package builder
