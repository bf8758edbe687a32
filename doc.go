// Package lvlnet is your in-memory playground for generating, storing
// and analyzing random networks — from core graph primitives to
// scale-free models and degree-distribution statistics.
//
// 🚀 What is lvlnet?
//
//	A compact network-science library that brings together:
//		• Core primitives: nodes with mixed int/string identities, undirected
//		  or directed edges, optional self-edges
//		• Random models: uniform random wiring & Barabási–Albert
//		  preferential attachment
//		• Statistics: degree histograms, normalized & cumulative
//		  distributions, power laws, Kolmogorov–Smirnov distance
//		• Persistence: delimited edge lists & BioGRID interaction exports
//
// ✨ Why choose lvlnet?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – seedable generators, sorted enumeration everywhere
//   - Composable – functional options & pluggable constructors
//   - Honest errors – sentinel errors for every failure mode
//
// Under the hood, everything is organized under five subpackages:
//
//	core/    — Graph, Node, NodeID types & edge bookkeeping
//	builder/ — generator framework + UniformRandom & ScaleFree models
//	dist/    — distribution math: Normalize, Cumulative, PowerLaw, KSDistance
//	netfile/ — two-column delimited edge-list import/export
//	biogrid/ — BioGRID interaction databases as per-organism graphs
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	a hub forming under preferential attachment: well-connected nodes
//	keep attracting the next edges.
//
// The cmd/lvlnet binary wraps the library into generate / analyze /
// stats subcommands for quick experiments.
//
//	go get github.com/katalvlaran/lvlnet
package lvlnet
