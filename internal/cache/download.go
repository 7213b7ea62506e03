package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"

	"rwall/internal/log"
)

// lockName lives in the cache root, next to backgrounds/, so the download
// directory holds nothing but complete images.
const lockName = ".download.lock"

// Downloader fetches remote images into the backgrounds cache.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a Downloader. A nil client means http.DefaultClient.
func NewDownloader(client *http.Client) *Downloader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Downloader{httpClient: client}
}

// Download returns the cached copy of url under bgRoot, fetching it first if
// no file with its name exists yet. An existing file is trusted without
// validation because only complete downloads are ever renamed into place.
func (d *Downloader) Download(ctx context.Context, url, bgRoot string) (string, error) {
	local := DownloadPath(url, bgRoot)
	if exists(local) {
		log.Debugf("Using cached background %s", local)
		return local, nil
	}

	lock := flock.New(filepath.Join(filepath.Dir(bgRoot), lockName))
	if err := lock.Lock(); err != nil {
		return "", fmt.Errorf("%w: lock %s: %v", ErrCacheWriteFailed, bgRoot, err)
	}
	defer lock.Unlock()

	// Another instance may have finished while we waited.
	if exists(local) {
		return local, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned %s", ErrDownloadFailed, url, resp.Status)
	}

	body := &trackingReader{r: resp.Body}
	var written int64
	err = writeAtomic(local, func(w io.Writer) error {
		n, copyErr := io.Copy(w, body)
		written = n
		return copyErr
	})
	if body.err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrDownloadFailed, url, body.err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCacheWriteFailed, local, err)
	}

	log.Printf("Downloaded %s (%s)", url, humanize.Bytes(uint64(written)))
	return local, nil
}

// trackingReader remembers read errors so they can be told apart from write errors.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		t.err = err
	}
	return n, err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
