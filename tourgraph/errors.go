package tourgraph

import "errors"

// Sentinel errors for tourgraph ingestion and construction.
var (
	// ErrOpenFailed indicates the Graphviz source file could not be opened.
	ErrOpenFailed = errors.New("tourgraph: unable to open graph file")

	// ErrEmptyGraph indicates the input contained no recognizable edges.
	ErrEmptyGraph = errors.New("tourgraph: no vertices found in input")

	// ErrDimensionMismatch indicates the weight matrix does not match len(labels).
	ErrDimensionMismatch = errors.New("tourgraph: weight matrix dimensions do not match labels")

	// ErrDuplicateLabel indicates a label appeared more than once in an explicit label list.
	ErrDuplicateLabel = errors.New("tourgraph: duplicate vertex label")
)
