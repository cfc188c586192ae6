// Package modi refines an initial basic feasible solution of a balanced
// transportation problem to guaranteed optimality using the modified
// distribution (MODI, u-v potential) method with stepping-stone
// reallocation.
//
// # Pipeline
//
// One refinement iteration walks a fixed state sequence:
//
//	COMPUTE_DUALS    — solve u_i + v_j = c_ij over the basic cells by
//	                   propagation, anchored at u_0 = 0.
//	SELECT_ENTERING  — score every non-basic cell by u_i + v_j − c_ij;
//	                   if no score is positive the basis is OPTIMAL.
//	FIND_LOOP        — locate the unique alternating row/column cycle the
//	                   entering cell closes through the spanning-tree basis.
//	REALLOCATE       — shift θ = min(flow of the minus cells) around the
//	                   cycle, admit the entering cell, retire exactly one
//	                   emptied cell, and return to COMPUTE_DUALS.
//
// The loop is bounded by a configurable iteration cap (default 10·(n+m));
// the method terminates finitely under non-degenerate pivoting, so the cap
// only guards against degenerate cycling and numeric faults. Exceeding it
// surfaces ErrIterationLimit together with the best basis found.
//
// # Basis
//
// Basis stores the current allocation set as a cell→flow mapping with
// per-row and per-column adjacency indices, which makes the cycle search a
// plain graph walk. NewBasis enforces the n+m−1 size invariant, inserting
// zero-valued cells that close no cycle when the seed is degenerate; this
// keeps the basis a spanning tree of the bipartite row/column graph, the
// property both the potential propagation and the loop search rely on.
//
// # Determinism
//
// All scans run in row-major order with first-found tie-breaking, so the
// same problem and seed always produce the same pivot sequence and the
// same final plan.
//
// Seeds come from package approx; the end-to-end pipeline lives in
// package solver.
package modi
