// Package builder provides the vertex-ID naming scheme used when
// synthesizing benchmark graphs.
//
//   - IDFn: a pure, deterministic function from a zero-based index to a
//     vertex label string.
//   - DefaultIDFn: the decimal-string scheme ("0","1",…), used by
//     genbench when labeling synthetic graph vertices.
package builder
