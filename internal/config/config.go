package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ─────────────────────────────────────────────────────────────
// Config — TOML settings under ~/.blockpad/
// ─────────────────────────────────────────────────────────────

// Backends accepted by Config.Backend.
const (
	BackendBlob   = "blob"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the application settings loaded from config.toml.
type Config struct {
	DataDir         string `toml:"data_dir"`
	Backend         string `toml:"backend"`
	AutosaveDelayMS int    `toml:"autosave_delay_ms"`
	BackupDir       string `toml:"backup_dir"`
	BackupSchedule  string `toml:"backup_schedule"`
	LogLevel        string `toml:"log_level"`
}

// Default returns the built-in settings, rooted under ~/.blockpad.
func Default() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".blockpad")
	return Config{
		DataDir:         base,
		Backend:         BackendBlob,
		AutosaveDelayMS: 2000,
		BackupDir:       filepath.Join(base, "backups"),
		BackupSchedule:  "@hourly",
		LogLevel:        "info",
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".blockpad", "config.toml")
}

// Load reads the config file at path, filling unset fields from
// Default. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Backend != BackendBlob && cfg.Backend != BackendSQLite && cfg.Backend != BackendMemory {
		return cfg, fmt.Errorf("unknown backend %q in %s", cfg.Backend, path)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
