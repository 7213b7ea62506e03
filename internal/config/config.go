// Package config manages application configuration including wallpaper directory settings.
// Persistent settings are stored as JSON in the user's config directory; the
// per-run flags live alongside them but are never written to disk.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	AppName     = "rwall"
	Version     = "1.0.0"
	CacheSubDir = ".cache/rwall" // relative to $HOME
	LogExt      = ".log"
)

// Backend names the external program used to set the desktop background.
type Backend string

const (
	BackendFeh       Backend = "feh"
	BackendSwww      Backend = "swww"
	BackendSwaybg    Backend = "swaybg"
	BackendHyprpaper Backend = "hyprpaper"
	BackendGsettings Backend = "gsettings"
	BackendCustom    Backend = "custom"
)

// Config holds the application settings that are saved to disk.
type Config struct {
	// WallpaperDir is the path where the user stores their wallpapers.
	WallpaperDir string `json:"wallpaper_dir,omitempty"`
	// PreferredBackend selects the applier. Empty means feh.
	PreferredBackend Backend `json:"preferred_backend,omitempty"`
	// CustomCommand is used by BackendCustom; %f is replaced by the image path.
	CustomCommand string `json:"custom_command,omitempty"`
	// Scaling is the swaybg mode (fill, fit, stretch...).
	Scaling string `json:"scaling,omitempty"`

	Rounded     bool `json:"-"` // --r
	Transparent bool `json:"-"` // --t
	Background  bool `json:"-"` // --b
	NoWindow    bool `json:"-"` // --n
}

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "config.json"), nil
}

// Load reads the config file from disk.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// Check if the file exists. If not, return a default configuration.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{PreferredBackend: BackendFeh}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.PreferredBackend == "" {
		cfg.PreferredBackend = BackendFeh
	}

	return &cfg, nil
}

func (c *Config) Save() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveWallpaperDir returns the directory browse mode enumerates.
// Order: configured value, $HOME/wallpapers if present, $XDG_PICTURES_DIR, $HOME/Pictures.
func (c *Config) ResolveWallpaperDir() string {
	if c.WallpaperDir != "" {
		return c.WallpaperDir
	}

	home := os.Getenv("HOME")
	legacy := filepath.Join(home, "wallpapers")
	if fi, err := os.Stat(legacy); err == nil && fi.IsDir() {
		return legacy
	}

	if xdg := os.Getenv("XDG_PICTURES_DIR"); xdg != "" {
		return xdg
	}
	return filepath.Join(home, "Pictures")
}
