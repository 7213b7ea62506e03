package manager

import (
	"context"
	"image"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rwall/internal/backend"
	"rwall/internal/cache"
	"rwall/internal/remote"
)

type recordingSetter struct {
	paths []string
	err   error
}

func (r *recordingSetter) SetWallpaper(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

// wallhavenStub serves the search endpoint at /search and the image at /x.jpg.
// imageOK toggles whether the image endpoint succeeds.
type wallhavenStub struct {
	*httptest.Server
	searchBody string
	imageOK    bool
	imageHits  int
}

func newStub(t *testing.T, payload []byte) *wallhavenStub {
	t.Helper()
	s := &wallhavenStub{imageOK: true}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			_, _ = w.Write([]byte(s.searchBody))
		case "/x.jpg":
			s.imageHits++
			if !s.imageOK {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	s.searchBody = `{"data":[{"path":"` + s.URL + `/x.jpg"}]}`
	t.Cleanup(s.Close)
	return s
}

func newManager(s *wallhavenStub, setter *recordingSetter) *Manager {
	m := New(s.Client(), setter)
	return m.WithFetcher(remote.NewClient(s.Client()).WithSearchURL(s.URL + "/search"))
}

func TestRunRemoteHappyPathThenIdempotent(t *testing.T) {
	// Arrange
	home := t.TempDir()
	t.Setenv("HOME", home)
	payload := []byte("B-image-bytes")
	stub := newStub(t, payload)
	setter := &recordingSetter{}
	m := newManager(stub, setter)

	// Act
	err := m.RunRemote(context.Background())

	// Assert
	require.NoError(t, err)
	want := filepath.Join(home, ".cache", "rwall", "backgrounds", cache.Digest(stub.URL+"/x.jpg")+".jpg")
	got, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
	assert.Equal(t, []string{want}, setter.paths)

	// Rerun with the image endpoint broken: the cached file is reused.
	stub.imageOK = false
	require.NoError(t, m.RunRemote(context.Background()))
	assert.Equal(t, []string{want, want}, setter.paths)
	assert.Equal(t, 1, stub.imageHits)
}

func TestRunRemoteMalformedResponse(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	stub := newStub(t, nil)
	stub.searchBody = `{"data":[]}`
	setter := &recordingSetter{}

	err := newManager(stub, setter).RunRemote(context.Background())

	assert.ErrorIs(t, err, remote.ErrParseFailed)
	assert.Empty(t, setter.paths)
	entries, _ := os.ReadDir(filepath.Join(home, ".cache", "rwall", "backgrounds"))
	assert.Empty(t, entries, "nothing written under backgrounds/")
}

func TestRunRemoteDownloadFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stub := newStub(t, nil)
	stub.imageOK = false
	setter := &recordingSetter{}

	err := newManager(stub, setter).RunRemote(context.Background())

	assert.ErrorIs(t, err, cache.ErrDownloadFailed)
	assert.Empty(t, setter.paths)
}

func TestRunRemoteApplyFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stub := newStub(t, []byte("B"))
	setter := &recordingSetter{err: backend.ErrApplyFailed}

	err := newManager(stub, setter).RunRemote(context.Background())

	assert.ErrorIs(t, err, backend.ErrApplyFailed)
}

func TestRunRemoteWithoutHome(t *testing.T) {
	t.Setenv("HOME", "")
	stub := newStub(t, []byte("B"))

	err := newManager(stub, &recordingSetter{}).RunRemote(context.Background())

	assert.ErrorIs(t, err, cache.ErrCacheUnavailable)
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
}

func TestLoadThumbnailsSkipsBrokenImages(t *testing.T) {
	// Arrange
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, "wallpapers")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeJPEG(t, filepath.Join(dir, "a.jpg"), 1920, 1080)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.png"), []byte("junk"), 0644))
	writeJPEG(t, filepath.Join(dir, "c.jpeg"), 100, 400)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	// Act
	thumbs, err := New(nil, &recordingSetter{}).LoadThumbnails(dir)

	// Assert: order follows enumeration, broken entry skipped
	require.NoError(t, err)
	require.Len(t, thumbs, 2)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), thumbs[0].Path)
	assert.Equal(t, filepath.Join(dir, "c.jpeg"), thumbs[1].Path)
	for _, th := range thumbs {
		b := th.Image.Bounds()
		assert.LessOrEqual(t, max(b.Dx(), b.Dy()), cache.ThumbnailSize)
	}
}

func TestLoadThumbnailsEmptyDirIsFatal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := New(nil, &recordingSetter{}).LoadThumbnails(t.TempDir())

	assert.ErrorIs(t, err, backend.ErrDirUnreadable)
}

func TestLoadThumbnailsMissingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := New(nil, &recordingSetter{}).LoadThumbnails("/no/such/dir")

	assert.ErrorIs(t, err, backend.ErrDirUnreadable)
}

func TestApplyDelegates(t *testing.T) {
	setter := &recordingSetter{}

	require.NoError(t, New(nil, setter).Apply("/w/a.jpg"))

	assert.Equal(t, []string{"/w/a.jpg"}, setter.paths)
}
