package runconfig

import (
	"os"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/brindlewood/antcolony/solver"
)

// Profile is a named, persisted AntColonyParameters plus the thread count
// to use for parallel runs.
type Profile struct {
	Ants        int     `toml:"ants"`
	Iterations  int     `toml:"iterations"`
	Alpha       float64 `toml:"alpha"`
	Beta        float64 `toml:"beta"`
	Evaporation float64 `toml:"evaporation"`
	Q           float64 `toml:"q"`
	Seed        uint32  `toml:"seed"`
	Threads     int     `toml:"threads"`
}

// Default returns the built-in profile matching the original CLI's
// hardcoded defaults.
func Default() Profile {
	return Profile{
		Ants:        128,
		Iterations:  150,
		Alpha:       1.0,
		Beta:        3.0,
		Evaporation: 0.5,
		Q:           100.0,
		Seed:        42,
		Threads:     runtime.NumCPU(),
	}
}

// Load decodes path as TOML into a Profile seeded from Default, so a
// profile file only needs to specify the fields it overrides, then
// applies the same clamp policy as solver.AntColonyParameters.
func Load(path string) (Profile, error) {
	if _, err := os.Stat(path); err != nil {
		return Profile{}, ErrProfileNotFound
	}

	profile := Default()
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		return Profile{}, ErrInvalidProfile
	}

	return clamp(profile), nil
}

// clamp applies the boundary-level parameter policy: zero Ants or
// Iterations clamp to 1; Threads is left untouched because 0 threads to
// the parallel path is a deliberate "return empty result" signal, not a
// data-entry mistake to paper over.
func clamp(p Profile) Profile {
	if p.Ants < 1 {
		p.Ants = 1
	}
	if p.Iterations < 1 {
		p.Iterations = 1
	}
	return p
}

// Parameters converts a Profile into solver.AntColonyParameters.
func (p Profile) Parameters() solver.AntColonyParameters {
	return solver.AntColonyParameters{
		Ants:        p.Ants,
		Iterations:  p.Iterations,
		Alpha:       p.Alpha,
		Beta:        p.Beta,
		Evaporation: p.Evaporation,
		Q:           p.Q,
		Seed:        p.Seed,
	}
}
