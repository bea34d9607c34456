// Package runconfig loads named AntColonyParameters profiles from TOML
// files, applying the same clamp-and-document policy the rest of this
// module uses for parameter validation (never silently diverge from the
// documented defaults; sentinel errors for anything the caller should be
// able to branch on with errors.Is).
package runconfig
