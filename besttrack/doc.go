// Package besttrack maintains the running best tour length and the set of
// canonically-distinct tours achieving it, deduplicated by a label-joined
// key so two paths describing the same cycle (different rotation or
// direction) collapse into one entry.
package besttrack
