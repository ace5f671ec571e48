package types

import "errors"

// Config holds the parameters for opening the content library's store.
type Config struct {
	// DataDir is the directory holding the database file. Created on open
	// if it does not exist.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Seed controls first-run seeding of absent collections with the
	// built-in sample dataset. Defaults to true.
	Seed bool `json:"seed" yaml:"seed"`
}

// ErrDataDirEmpty is returned when a Config has no data directory.
var ErrDataDirEmpty = errors.New("data directory must not be empty")

// DefaultConfig returns a Config with seeding enabled and no data directory;
// callers fill DataDir from flags, config file, or platform defaults.
func DefaultConfig() Config {
	return Config{Seed: true}
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
