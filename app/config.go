package app

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/DeadSix27/dfind/models"
)

// LoadConfig reads the YAML configuration at path. A missing file is
// not an error; the defaults are used instead.
func LoadConfig(path string) (*models.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("index_file_prefix", "dfind")
	v.SetDefault("index_file_extension", ".db")
	v.SetDefault("data_dir", defaultDataDir())
	// The system root is excluded by default; indexing it pulls in
	// virtual filesystems and the OS install.
	v.SetDefault("excluded_roots", []string{"/"})
	v.SetDefault("web.port", 8080)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var cfg models.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DefaultConfigPath is the configuration file expected beside the
// executable, next to the index database.
func DefaultConfigPath() string {
	return filepath.Join(defaultDataDir(), "dfind.yaml")
}

// defaultDataDir is the directory of the executable; the database and
// configuration live beside the binary.
func defaultDataDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
