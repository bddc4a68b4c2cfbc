package config

import "context"

// Loader abstracts the manifest format from the application. The only
// concrete implementation today is the HCL loader; the interface keeps the
// app and its tests independent of the parser.
type Loader interface {
	// Load reads every manifest file reachable from the given paths (files
	// or directories) and merges them into a single validated Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
