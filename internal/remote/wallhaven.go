// Package remote queries the wallhaven search API for a random wallpaper.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	ErrFetchFailed = errors.New("remote fetch failed")
	ErrParseFailed = errors.New("remote parse failed")
)

// FetchError reports a search request that did not return 2xx.
// StatusCode is zero when no response was received at all.
type FetchError struct {
	StatusCode int
	Reason     string
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %s", ErrFetchFailed, e.Reason)
	}
	return fmt.Sprintf("%v: status %d: %s", ErrFetchFailed, e.StatusCode, e.Reason)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// Client fetches wallpaper URLs from a wallhaven style search endpoint.
type Client struct {
	httpClient *http.Client
	searchURL  string
}

// NewClient creates a Client against SearchURL. A nil client means http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, searchURL: SearchURL}
}

// WithSearchURL points the client at a different search endpoint.
func (c *Client) WithSearchURL(u string) *Client {
	c.searchURL = u
	return c
}

// FetchRandomURL issues one search and returns the first result's image URL verbatim.
func (c *Client) FetchRandomURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL, nil)
	if err != nil {
		return "", &FetchError{Reason: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{StatusCode: resp.StatusCode, Reason: fmt.Sprintf("failed to read response body: %v", err)}
	}

	return parseFirstPath(body)
}

// searchResponse is decoded loosely so every shape mismatch can be reported
// as a parse failure instead of a silent zero value.
type searchResponse struct {
	Data []json.RawMessage `json:"data"`
}

type searchImage struct {
	Path *string `json:"path"`
}

func parseFirstPath(body []byte) (string, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return "", fmt.Errorf("%w: response is not a JSON object: %v", ErrParseFailed, err)
	}

	raw, ok := root["data"]
	if !ok {
		return "", fmt.Errorf("%w: missing data array", ErrParseFailed)
	}
	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Data == nil {
		return "", fmt.Errorf("%w: data is not an array: %s", ErrParseFailed, truncate(raw))
	}
	if len(resp.Data) == 0 {
		return "", fmt.Errorf("%w: no wallpapers found in the response", ErrParseFailed)
	}

	var first searchImage
	if err := json.Unmarshal(resp.Data[0], &first); err != nil {
		return "", fmt.Errorf("%w: first result is not an object: %v", ErrParseFailed, err)
	}
	if first.Path == nil {
		return "", fmt.Errorf("%w: no 'path' field found in wallpaper data", ErrParseFailed)
	}
	return *first.Path, nil
}

func truncate(b []byte) string {
	const max = 64
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
