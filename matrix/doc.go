// Package matrix offers a dense, row-major numeric matrix used as backing
// storage for weight and pheromone tables.
//
// The matrix package provides:
//
//   - Dense, a cache-friendly row-major float64 matrix with safe, error
//     returning accessors (no panics on bad indices).
//   - MatrixView and Induced for no-copy windows and copy-based submatrix
//     extraction.
//   - A documented numeric policy (NaN/Inf rejection), toggleable per
//     matrix via NewDenseWithPolicy for callers that need +Inf sentinels.
package matrix
