package models

import "path/filepath"

// Config is the static configuration for dfind, loaded once and
// threaded into the indexer and searcher at construction.
type Config struct {
	IndexFilePrefix    string    `mapstructure:"index_file_prefix"`
	IndexFileExtension string    `mapstructure:"index_file_extension"`
	DataDir            string    `mapstructure:"data_dir"`
	ExcludedRoots      []string  `mapstructure:"excluded_roots"`
	CustomLocations    []string  `mapstructure:"custom_locations"`
	OnlyTheseRoots     []string  `mapstructure:"only_these_roots"`
	Web                WebConfig `mapstructure:"web"`
}

type WebConfig struct {
	Port int `mapstructure:"port"`
}

// IndexFile returns the path of the index database file.
func (c *Config) IndexFile() string {
	return filepath.Join(c.DataDir, c.IndexFilePrefix+c.IndexFileExtension)
}
