package runconfig

import "errors"

// Sentinel errors for profile loading.
var (
	// ErrProfileNotFound indicates the TOML file could not be opened.
	ErrProfileNotFound = errors.New("runconfig: profile file not found")

	// ErrInvalidProfile indicates the TOML file could not be decoded into a Profile.
	ErrInvalidProfile = errors.New("runconfig: malformed profile")
)
