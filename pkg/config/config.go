// Package config provides configuration management for mibigtaxa.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Cache: file
//   - Log: level, format, destination
//   - General: with_progress
//
// Runtime-only fields (CLI flags only):
//   - Build.TaxdumpFile, Build.MergedDumpFile, Build.DataDir (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MIBIGTAXA_ prefix with underscores for nesting:
//
//	MIBIGTAXA_CACHE_FILE=/data/taxa_cache.json
//	MIBIGTAXA_LOG_LEVEL=info
//	MIBIGTAXA_WITH_PROGRESS=false
package config

// Config represents the complete mibigtaxa configuration.
type Config struct {
	// Cache contains settings for the serialized taxon cache.
	Cache CacheConfig `mapstructure:"cache" yaml:"cache"`

	// Build contains settings specific to the build command.
	Build BuildConfig `mapstructure:"build" yaml:"build"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// WithProgress enables terminal progress output during long
	// operations (taxdump parsing, SQLite export).
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// CacheConfig contains settings for the serialized taxon cache file.
type CacheConfig struct {
	// File is the path of the serialized cache. When empty, the CLI
	// falls back to DefaultCacheFile(HomeDir).
	File string `mapstructure:"file" yaml:"file"`
}

// BuildConfig contains settings specific to the build command.
// All fields are runtime-only and arrive via CLI flags.
type BuildConfig struct {
	// TaxdumpFile is the path to the NCBI taxdump file with one taxon
	// record per line (tax_id, parent_id, name, rank).
	TaxdumpFile string `mapstructure:"taxdump_file" yaml:"taxdump_file"`

	// MergedDumpFile is the path to the NCBI merged-ID dump with one
	// (old_id, new_id) redirect per line.
	MergedDumpFile string `mapstructure:"merged_dump_file" yaml:"merged_dump_file"`

	// DataDir is the directory with MIBiG-style JSON entries. The taxon
	// IDs referenced by these entries decide which part of the taxonomy
	// goes into the cache.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		WithProgress: true,
	}

	return res
}
