package types

import (
	"errors"
	"fmt"
	"strings"
)

// Supported backend names.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Default data file names, relative to the working directory.
const (
	DefaultJSONLFile  = "pets.jsonl"
	DefaultSQLiteFile = "pets.db"
)

// DefaultSentinel ends a batch of pet entries.
const DefaultSentinel = "done"

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrMaxSizeInvalid  = errors.New("max size must not be negative")
	ErrSentinelInvalid = errors.New("sentinel must not be empty")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSONL:  true,
	BackendSQLite: true,
}

// Config holds every setting petdb reads from config.yaml, flags and the
// environment. A MaxSize of zero means the registry is unbounded.
type Config struct {
	Backend      string `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataFile     string `json:"data_file" yaml:"data_file,omitempty" mapstructure:"data_file"`
	MaxSize      int    `json:"max_size" yaml:"max_size" mapstructure:"max_size"`
	MinAge       int    `json:"min_age" yaml:"min_age" mapstructure:"min_age"`
	MaxAge       int    `json:"max_age" yaml:"max_age" mapstructure:"max_age"`
	Sentinel     string `json:"sentinel" yaml:"sentinel" mapstructure:"sentinel"`
	LogLevel     string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat    string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
	MessagesFile string `json:"messages_file" yaml:"messages_file,omitempty" mapstructure:"messages_file"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendJSONL,
		MinAge:    DefaultMinAge,
		MaxAge:    DefaultMaxAge,
		Sentinel:  DefaultSentinel,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// AgeRange returns the configured age bounds.
func (c Config) AgeRange() AgeRange {
	return AgeRange{Min: c.MinAge, Max: c.MaxAge}
}

// DefaultDataFile returns the data file name for the configured backend.
func (c Config) DefaultDataFile() string {
	if c.Backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultJSONLFile
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
	if c.MaxSize < 0 {
		return ErrMaxSizeInvalid
	}
	if strings.TrimSpace(c.Sentinel) == "" {
		return ErrSentinelInvalid
	}
	return c.AgeRange().Validate()
}
