package backend

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"rwall/internal/config"
	"rwall/internal/log"
)

var ErrApplyFailed = errors.New("apply failed")

// WallpaperSetter applies a local image file as the desktop background.
type WallpaperSetter interface {
	SetWallpaper(path string) error
}

type Setter struct {
	cfg *config.Config
}

// NewSetter creates a new Setter instance with the given configuration.
func NewSetter(cfg *config.Config) *Setter {
	return &Setter{cfg: cfg}
}

// SetWallpaper applies the wallpaper at the given path using the configured
// backend. Programs are always invoked with an argv vector, never a shell, so
// paths with spaces or quotes reach them as a single argument.
func (s *Setter) SetWallpaper(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrApplyFailed)
	}

	var err error
	switch s.cfg.PreferredBackend {
	case config.BackendFeh, "":
		err = run("feh", "--bg-scale", path)
	case config.BackendSwww:
		err = s.setSwww(path)
	case config.BackendSwaybg:
		err = s.setSwaybg(path)
	case config.BackendHyprpaper:
		err = s.setHyprpaper(path)
	case config.BackendGsettings:
		err = s.setGsettings(path)
	case config.BackendCustom:
		err = s.setCustom(path)
	default:
		err = fmt.Errorf("unknown backend: %s", s.cfg.PreferredBackend)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrApplyFailed, err)
	}

	log.Println("Wallpaper set successfully.")
	return nil
}

// setSwww uses the 'swww' command line tool.
// Docs: https://github.com/LGFae/swww
func (s *Setter) setSwww(path string) error {
	return run("swww", "img", path, "--transition-type", "grow", "--transition-pos", "0.5,0.5", "--transition-step", "90")
}

// setSwaybg replaces any running swaybg. swaybg stays resident, so success
// means it was started.
func (s *Setter) setSwaybg(path string) error {
	_ = exec.Command("pkill", "swaybg").Run()

	mode := "fill"
	if s.cfg.Scaling != "" {
		mode = s.cfg.Scaling
	}

	cmd := exec.Command("swaybg", "-i", path, "-m", mode)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// setHyprpaper talks to hyprpaper over hyprctl: preload, then assign to all
// monitors with an empty monitor name.
func (s *Setter) setHyprpaper(path string) error {
	// Already preloaded images make preload fail; the wallpaper call decides.
	_ = run("hyprctl", "hyprpaper", "preload", path)
	return run("hyprctl", "hyprpaper", "wallpaper", ","+path)
}

func (s *Setter) setGsettings(path string) error {
	uri := "file://" + path
	if err := run("gsettings", "set", "org.gnome.desktop.background", "picture-uri", uri); err != nil {
		return err
	}
	return run("gsettings", "set", "org.gnome.desktop.background", "picture-uri-dark", uri)
}

// setCustom splits the template on whitespace first and substitutes %f in
// each field afterwards, so the path is never re-split.
func (s *Setter) setCustom(path string) error {
	parts := strings.Fields(s.cfg.CustomCommand)
	if len(parts) == 0 {
		return fmt.Errorf("custom command is empty")
	}
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "%f", path)
	}
	return run(parts[0], parts[1:]...)
}

// run executes name and folds its output into the error on a non-zero exit.
func run(name string, args ...string) error {
	var out bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return fmt.Errorf("%s: %w (output: %s)", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
