package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "mibigtaxa"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/mibigtaxa by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/mibigtaxa by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/mibigtaxa/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/mibigtaxa/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DefaultCacheFile returns the fallback location of the serialized
// taxon cache, used when Cache.File is not configured.
func DefaultCacheFile(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "taxa_cache.json")
}
