// Package manager drives rwall's two modes: the headless remote pipeline
// (fetch, download, apply) and the preparation of thumbnails for browse mode.
package manager

import (
	"context"
	"fmt"
	"image"
	"net/http"

	"rwall/internal/backend"
	"rwall/internal/cache"
	"rwall/internal/log"
	"rwall/internal/remote"
)

// URLFetcher returns the URL of one remote wallpaper.
type URLFetcher interface {
	FetchRandomURL(ctx context.Context) (string, error)
}

// Thumbnail is one browsable entry: the source image and its decoded thumbnail.
type Thumbnail struct {
	Path  string
	Image image.Image
}

// Manager wires the cache, remote client and setter together.
type Manager struct {
	fetcher    URLFetcher
	downloader *cache.Downloader
	setter     backend.WallpaperSetter
}

// New creates a Manager. httpClient is shared by the search and the download.
func New(httpClient *http.Client, setter backend.WallpaperSetter) *Manager {
	return &Manager{
		fetcher:    remote.NewClient(httpClient),
		downloader: cache.NewDownloader(httpClient),
		setter:     setter,
	}
}

// WithFetcher replaces the remote search client.
func (m *Manager) WithFetcher(f URLFetcher) *Manager {
	m.fetcher = f
	return m
}

// RunRemote fetches a random wallpaper, caches it and applies it.
// The first failing step aborts the run.
func (m *Manager) RunRemote(ctx context.Context) error {
	url, err := m.fetcher.FetchRandomURL(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch a random wallpaper: %w", err)
	}
	log.Debugf("Remote wallpaper %s", url)

	root, err := cache.EnsureRoot()
	if err != nil {
		return fmt.Errorf("failed to access cache directory: %w", err)
	}
	bgRoot, err := cache.EnsureBackgrounds(root)
	if err != nil {
		return fmt.Errorf("failed to access background cache directory: %w", err)
	}

	local, err := m.downloader.Download(ctx, url, bgRoot)
	if err != nil {
		return fmt.Errorf("failed to download wallpaper: %w", err)
	}

	if err := m.setter.SetWallpaper(local); err != nil {
		return fmt.Errorf("failed to set wallpaper: %w", err)
	}
	return nil
}

// LoadThumbnails enumerates dir and builds thumbnails in order, skipping
// images that cannot be decoded or cached. A directory with no supported
// images is treated as unreadable.
func (m *Manager) LoadThumbnails(dir string) ([]Thumbnail, error) {
	files, err := backend.GetWallpapers(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no images found in directory: %s", backend.ErrDirUnreadable, dir)
	}

	root, err := cache.EnsureRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to set up cache directory: %w", err)
	}

	thumbs := make([]Thumbnail, 0, len(files))
	for _, path := range files {
		img, err := cache.GetThumbnail(path, root)
		if err != nil {
			log.Printf("Skipping %s: %v", path, err)
			continue
		}
		thumbs = append(thumbs, Thumbnail{Path: path, Image: img})
	}
	return thumbs, nil
}

// Apply sets path as the background. Used by the browse UI on selection.
func (m *Manager) Apply(path string) error {
	log.Printf("Selected wallpaper: %s", path)
	return m.setter.SetWallpaper(path)
}
