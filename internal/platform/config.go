package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-vault configuration file.
const ConfigFileName = "tend.yaml"

// VaultConfig is the optional per-vault configuration.
type VaultConfig struct {
	DefaultFilter   string `yaml:"default_filter"`
	PageSize        int    `yaml:"page_size"`
	PomodoroMinutes int    `yaml:"pomodoro_minutes"`
	Format          string `yaml:"format"`
}

// DefaultVaultConfig returns the configuration used when no file exists.
func DefaultVaultConfig() VaultConfig {
	return VaultConfig{
		DefaultFilter:   "all",
		PageSize:        5,
		PomodoroMinutes: 25,
		Format:          "json",
	}
}

// LoadVaultConfig reads tend.yaml from the vault directory.
// A missing file yields defaults; a malformed file is an error, since a user
// wrote it by hand and silent fallback would hide the typo.
func LoadVaultConfig(vaultPath string) (VaultConfig, error) {
	cfg := DefaultVaultConfig()

	data, err := os.ReadFile(filepath.Join(vaultPath, ConfigFileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", ConfigFileName, err)
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 5
	}
	if cfg.PomodoroMinutes <= 0 {
		cfg.PomodoroMinutes = 25
	}
	return cfg, nil
}

// PomodoroDuration returns the configured session length.
func (c VaultConfig) PomodoroDuration() time.Duration {
	return time.Duration(c.PomodoroMinutes) * time.Minute
}
