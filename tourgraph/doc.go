// Package tourgraph defines the immutable dense weighted directed graph
// consumed by the ant colony solver, plus the Graphviz-like text ingestion
// that builds one and the tour canonicalization used to deduplicate
// equivalent best tours.
//
// A Graph is built once, either from an explicit label/weight table
// (FromDense) or from text (ParseGraphviz/ParseGraphvizFile), and is
// read-only for the rest of its lifetime: vertex count, per-edge weight
// lookup, label lookup, and Canonicalize are the only operations a Solver
// needs.
package tourgraph
