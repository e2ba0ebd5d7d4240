package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPDoer is the subset of *http.Client used by HTTP.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTP issues real GET requests against BaseURL.
type HTTP struct {
	BaseURL string
	Client  HTTPDoer
}

// NewHTTP validates baseURL and builds a transport around an *http.Client.
// A zero timeout leaves the client without one.
func NewHTTP(baseURL string, timeout time.Duration) (*HTTP, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base url %q: want http(s)://host[:port]", baseURL)
	}
	return &HTTP{
		BaseURL: strings.TrimRight(u.String(), "/"),
		Client:  &http.Client{Timeout: timeout},
	}, nil
}

func (h *HTTP) Get(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+path, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, nil
}
