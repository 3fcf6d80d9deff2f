// Package config loads and persists installer settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RaidMode is the requested pool topology
type RaidMode string

const (
	RaidSingle RaidMode = "single"
	RaidMirror RaidMode = "mirror"
	RaidZ1     RaidMode = "raidz1"
	RaidZ2     RaidMode = "raidz2"
)

// AllRaidModes returns topologies in display order
func AllRaidModes() []RaidMode {
	return []RaidMode{RaidSingle, RaidMirror, RaidZ1, RaidZ2}
}

// MinDrives returns the minimum number of drives the topology needs
func (r RaidMode) MinDrives() int {
	switch r {
	case RaidMirror:
		return 2
	case RaidZ1:
		return 3
	case RaidZ2:
		return 4
	default:
		return 1
	}
}

// Compression is the pool compression algorithm
type Compression string

const (
	CompressionLZ4  Compression = "lz4"
	CompressionZstd Compression = "zstd"
	CompressionOff  Compression = "off"
)

// AllCompressions returns compression choices in display order
func AllCompressions() []Compression {
	return []Compression{CompressionLZ4, CompressionZstd, CompressionOff}
}

// Settings holds everything the wizard's settings screen edits
type Settings struct {
	PoolName    string      `yaml:"pool_name" mapstructure:"pool_name"`
	Raid        RaidMode    `yaml:"raid" mapstructure:"raid"`
	Compression Compression `yaml:"compression" mapstructure:"compression"`
	Encryption  bool        `yaml:"encryption" mapstructure:"encryption"`
	Passphrase  string      `yaml:"-" mapstructure:"-"`
	Hostname    string      `yaml:"hostname" mapstructure:"hostname"`
	SwapGiB     int         `yaml:"swap_gib" mapstructure:"swap_gib"`
}

// Defaults returns the settings a fresh wizard run starts from
func Defaults() Settings {
	return Settings{
		PoolName:    "zroot",
		Raid:        RaidSingle,
		Compression: CompressionLZ4,
		Encryption:  false,
		SwapGiB:     0,
	}
}

// poolNameRe matches valid ZFS pool names: alphanumeric start, then
// alphanumerics plus - _ . :
var poolNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.:-]*$`)

// Validate checks settings for internal consistency
func (s Settings) Validate() error {
	if s.PoolName == "" {
		return fmt.Errorf("pool name must not be empty")
	}
	if !poolNameRe.MatchString(s.PoolName) {
		return fmt.Errorf("invalid pool name %q", s.PoolName)
	}
	valid := false
	for _, mode := range AllRaidModes() {
		if s.Raid == mode {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown raid mode %q", s.Raid)
	}
	valid = false
	for _, c := range AllCompressions() {
		if s.Compression == c {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unknown compression %q", s.Compression)
	}
	if s.SwapGiB < 0 {
		return fmt.Errorf("swap size must not be negative")
	}
	return nil
}

var configPathOverride string

// SetConfigPath overrides the default config file location
func SetConfigPath(path string) {
	configPathOverride = path
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	if configPathOverride != "" {
		return configPathOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "zbminstall", "config.yaml"), nil
}

// Dir returns the config directory
func Dir() (string, error) {
	path, err := ConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// EnsureDir creates the config directory if missing
func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// Exists reports whether a config file is present
func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads settings from the config file, applying defaults for any
// keys not present
func Load() (Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return Settings{}, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := Defaults()
	v.SetDefault("pool_name", defaults.PoolName)
	v.SetDefault("raid", string(defaults.Raid))
	v.SetDefault("compression", string(defaults.Compression))
	v.SetDefault("encryption", defaults.Encryption)
	v.SetDefault("swap_gib", defaults.SwapGiB)

	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("failed to read config: %w", err)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}

	return s, nil
}

// Save writes settings to the config file. The passphrase is never
// persisted.
func Save(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := EnsureDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
