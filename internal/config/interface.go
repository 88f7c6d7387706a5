package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads profile files from the given paths and translates them
	// into the format-agnostic model. Paths may name single files or
	// directories. Later files override earlier ones.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
