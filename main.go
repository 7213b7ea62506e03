package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"rwall/internal/backend"
	"rwall/internal/config"
	"rwall/internal/gui"
	"rwall/internal/log"
	"rwall/internal/manager"
	"rwall/internal/remote"
)

func main() {
	// Parse CLI flags
	rounded := flag.Bool("r", false, "Apply rounded-corner styling to the container")
	transparent := flag.Bool("t", false, "Use a transparent window background")
	background := flag.Bool("b", false, "Fetch a random wallpaper from wallhaven, apply it and exit")
	noWindow := flag.Bool("n", false, "Start the UI loop without creating a window")
	dir := flag.String("dir", "", "Wallpaper directory to browse (saved for later runs)")

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Could not load config: ", err)
	}
	cfg.Rounded, cfg.Transparent = *rounded, *transparent
	cfg.Background, cfg.NoWindow = *background, *noWindow

	if *dir != "" && *dir != cfg.WallpaperDir {
		cfg.WallpaperDir = *dir
		if err := cfg.Save(); err != nil {
			log.Printf("Could not save config: %v", err)
		}
	}

	m := manager.New(remote.NewHTTPClient(), backend.NewSetter(cfg))

	// Remote Mode (headless)
	if cfg.Background {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := m.RunRemote(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	gui.Init()

	// Idle Mode
	if cfg.NoWindow {
		gui.Idle()
		return
	}

	// Browse Mode
	thumbs, err := m.LoadThumbnails(cfg.ResolveWallpaperDir())
	if err != nil {
		log.Fatal(err)
	}

	opts := gui.Options{Rounded: cfg.Rounded, Transparent: cfg.Transparent}
	err = gui.Run(opts, thumbs, func(path string) {
		if err := m.Apply(path); err != nil {
			log.Printf("Failed to set wallpaper: %v", err)
		}
	})
	if err != nil {
		log.Fatal("Error running GUI: ", err)
	}
}
