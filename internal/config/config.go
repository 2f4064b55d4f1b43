package config

import (
	"os"
	"path/filepath"

	"github.com/spec-driven/specforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Dir returns the path to the preferences directory (~/.specforge/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the preferences file (~/.specforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read the preferences file. The file is
// optional and never consulted for project inputs; those are gathered
// interactively.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)

	viper.SetDefault("defaults.description", "")
	viper.SetDefault("color", true)
	viper.SetDefault("min_version", "")

	// Ignore error if the preferences file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// DescriptionDefault returns the preferred default for the description
// prompt, or "" when unset.
func DescriptionDefault() string {
	return viper.GetString("defaults.description")
}

// ColorEnabled reports whether styled output is wanted.
func ColorEnabled() bool {
	return viper.GetBool("color")
}

// MinVersion returns the advisory minimum CLI version, or "" when unset.
func MinVersion() string {
	return viper.GetString("min_version")
}
