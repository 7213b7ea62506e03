package remote

import (
	"net/http"

	"rwall/internal/config"
)

var defaultUserAgent = config.AppName + "/" + config.Version

// UserAgentTransport stamps every outgoing request with a User-Agent.
// A nil RoundTripper means http.DefaultTransport; an empty UserAgent means rwall/<version>.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
}

func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.RoundTripper
	if next == nil {
		next = http.DefaultTransport
	}
	ua := t.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}

	// RoundTrippers must not mutate the caller's request.
	outReq := req.Clone(req.Context())
	outReq.Header.Set("User-Agent", ua)
	return next.RoundTrip(outReq)
}

// NewHTTPClient returns the client shared by the fetcher and the downloader.
// No timeout is set; the transport defaults apply.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &UserAgentTransport{},
	}
}
