// SPDX-License-Identifier: MIT
// Package: lvlnet/builder
//
// impl_scale_free.go — implementation of ScaleFree(n, m).
//
// Canonical model (Barabási–Albert style growth):
//   - Seed phase: n disconnected nodes with identifiers 0..n-1.
//   - Growth phase: for step i in 0..n-1, add node n+i and attach it to
//     min(m, i+1) distinct existing nodes, chosen without replacement with
//     probability proportional to current degree. The i+1 cap keeps the
//     earliest steps from requesting more targets than exist.
//   - Zero degree sum (the very first drawing step) falls back to a uniform
//     distribution over existing nodes.
//
// Selection-weight policy (documented decision): weights are computed ONCE
// per growth step, before any of that step's edges are added. Recomputing
// after each edge within a step is a valid alternative model that produces
// numerically different graphs; this package deliberately fixes the
// per-step policy and tests it.
//
// Contract:
//   - Target graph must be undirected without self-edges (else ErrUnsupportedGraphMode).
//   - n ≥ 0, m ≥ 0 (else ErrInvalidParameter).
//   - cfg.rng required whenever the growth phase draws, i.e. n ≥ 1 and m ≥ 1
//     (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n·m·log n) — per step one prefix-sum pass O(existing) plus
//     binary-searched draws; rejected draws are geometric with small expectation.
//   - Space: O(n) identifiers + O(n) per-step weight prefix.
//
// Termination:
//   - Guaranteed: after step k every grown node has degree ≥ 1, so the number
//     of positive-weight candidates at step i is at least i+1 ≥ min(m, i+1),
//     and rejection-resampling always has a fresh admissible target.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlnet/core"
)

// ScaleFree returns a Constructor that grows a scale-free network with n
// seed nodes and up to m preferential-attachment edges per growth step.
func ScaleFree(n, m int) Constructor {
	// The returned closure captures (n, m); Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Mode gate: the model is defined over undirected simple graphs.
		if !g.Undirected() || g.SelfEdgesAllowed() {
			return fmt.Errorf("%s: requires an undirected graph without self-edges: %w",
				MethodScaleFree, ErrUnsupportedGraphMode)
		}

		// 2) Parameter validation (fail fast, zero side-effects on invalid input).
		if n < MinNodeCount {
			return fmt.Errorf("%s: node count %d is negative: %w",
				MethodScaleFree, n, ErrInvalidParameter)
		}
		if m < MinEdgeCount {
			return fmt.Errorf("%s: edges per step %d is negative: %w",
				MethodScaleFree, m, ErrInvalidParameter)
		}

		// 3) RNG gate: growth draws happen iff there is at least one seed node
		//    and a positive per-step edge budget.
		if cfg.rng == nil && n > 0 && m > 0 {
			return fmt.Errorf("%s: rng is required: %w", MethodScaleFree, ErrNeedRandSource)
		}

		// 4) Seed phase: n disconnected nodes, identifiers 0..n-1.
		ids := make([]core.NodeID, 0, 2*n)
		var err error
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err = g.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%v): %w", MethodScaleFree, id, err)
			}
			ids = append(ids, id)
		}

		// 5) Growth phase: step i adds node n+i and attaches it.
		rng := cfg.rng
		for i := 0; i < n; i++ {
			newID := cfg.idFn(n + i)
			if err = g.AddNode(newID); err != nil {
				return fmt.Errorf("%s: AddNode(%v): %w", MethodScaleFree, newID, err)
			}

			// Candidates are all nodes that existed before this step.
			candidates := ids
			ids = append(ids, newID)

			// Per-step edge budget, capped by the number of addressable targets.
			quota := m
			if i+1 < quota {
				quota = i + 1
			}
			if quota == 0 {
				continue
			}

			// Selection weights, computed once per step (see file header):
			// prefix[k] = Σ degree(candidates[0..k]) for binary-searched draws.
			prefix := make([]int, len(candidates))
			total := 0
			for k, id := range candidates {
				node, gerr := g.GetNode(id)
				if gerr != nil {
					return fmt.Errorf("%s: GetNode(%v): %w", MethodScaleFree, id, gerr)
				}
				total += node.Degree()
				prefix[k] = total
			}

			for added := 0; added < quota; {
				// Draw one target: degree-weighted, or uniform while the
				// graph has no edges yet (total == 0).
				var target core.NodeID
				if total == 0 {
					target = candidates[rng.Intn(len(candidates))]
				} else {
					r := rng.Intn(total)
					k := sort.SearchInts(prefix, r+1)
					target = candidates[k]
				}

				// Reject-and-resample duplicates of this step's earlier picks.
				// All of the new node's edges were added this step, so the
				// adjacency check covers the chosen-set check.
				exists, eerr := g.EdgeExists(newID, target)
				if eerr != nil {
					return fmt.Errorf("%s: EdgeExists(%v,%v): %w",
						MethodScaleFree, newID, target, eerr)
				}
				if exists {
					continue
				}

				if err = g.AddEdge(newID, target); err != nil {
					return fmt.Errorf("%s: AddEdge(%v,%v): %w",
						MethodScaleFree, newID, target, err)
				}
				added++
			}
		}

		return nil
	}
}
