// Package gen produces synthetic balanced transportation instances for
// benchmarks and head-to-head method comparisons.
//
// Two families are provided:
//
//   - Uniform — independent integer costs, supplies and demands drawn from
//     flat ranges, then demand is rescaled and patched so total demand
//     equals total supply exactly. A neutral instance with no structure
//     favoring either seeding heuristic.
//
//   - Canyon — a chosen fraction of columns ("dominant" columns) receives
//     systematically low costs while the rest sit far above, carving
//     low-cost canyons through the matrix. The structure rewards
//     Russell's global reduced-cost view over Vogel's local penalties,
//     which makes the family useful for method-sensitivity studies.
//
// All generation is deterministic: the same (shape, seed) pair always
// yields the same instance, and no time-based randomness exists anywhere.
// Seed 0 selects a fixed default stream, matching the module-wide RNG
// policy. Generated instances are exactly balanced (integer totals), so
// they pass transport.NewProblem with no tolerance spent.
package gen
