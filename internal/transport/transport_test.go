package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamed0406/endpointprobe/internal/httpapi"
	"github.com/hamed0406/endpointprobe/internal/probe"
	"github.com/hamed0406/endpointprobe/internal/repo/memory"
)

type stubHTTPClient struct {
	resp    *http.Response
	err     error
	lastReq *http.Request
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type brokenBody struct{}

func (brokenBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (brokenBody) Close() error             { return nil }

func fixture() http.Handler {
	return httpapi.NewServer(nil, memory.NewSeeded()).Router()
}

func TestNewHTTP_ValidatesBaseURL(t *testing.T) {
	for _, bad := range []string{"", "localhost:8000", "ftp://x", "http://", "://"} {
		_, err := NewHTTP(bad, 0)
		assert.Error(t, err, "base url %q", bad)
	}

	h, err := NewHTTP(" http://localhost:8000/ ", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", h.BaseURL)
}

func TestHTTP_GetAgainstServer(t *testing.T) {
	srv := httptest.NewServer(fixture())
	defer srv.Close()

	h, err := NewHTTP(srv.URL, 2*time.Second)
	require.NoError(t, err)

	status, body, err := h.Get(context.Background(), "/api/nodes")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(string(body), "["))

	status, _, err = h.Get(context.Background(), "/missing")
	require.NoError(t, err, "non-2xx is a completed exchange")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHTTP_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(fixture())
	url := srv.URL
	srv.Close()

	h, err := NewHTTP(url, time.Second)
	require.NoError(t, err)

	_, _, err = h.Get(context.Background(), "/api/stats")
	require.Error(t, err)
}

func TestHTTP_TimeoutIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer srv.Close()

	h, err := NewHTTP(srv.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, _, err = h.Get(context.Background(), "/")
	require.Error(t, err)
}

func TestHTTP_StubClient(t *testing.T) {
	client := &stubHTTPClient{resp: &http.Response{
		StatusCode: http.StatusServiceUnavailable,
		Body:       io.NopCloser(strings.NewReader("oops")),
	}}
	h := &HTTP{BaseURL: "https://example.invalid", Client: client}

	status, body, err := h.Get(context.Background(), "/api/stats")
	require.NoError(t, err)
	assert.Equal(t, 503, status)
	assert.Equal(t, "oops", string(body))
	require.NotNil(t, client.lastReq)
	assert.Equal(t, http.MethodGet, client.lastReq.Method)
	assert.Equal(t, "https://example.invalid/api/stats", client.lastReq.URL.String())
}

func TestHTTP_BodyReadFailure(t *testing.T) {
	client := &stubHTTPClient{resp: &http.Response{StatusCode: 200, Body: brokenBody{}}}
	h := &HTTP{BaseURL: "https://example.invalid", Client: client}

	_, _, err := h.Get(context.Background(), "/api/nodes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read body")
}

func TestInProcess_Get(t *testing.T) {
	p := NewInProcess(fixture())

	status, body, err := p.Get(context.Background(), "/api/stats")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"total":8`)
}

func TestInProcess_NilHandler(t *testing.T) {
	_, _, err := NewInProcess(nil).Get(context.Background(), "/api/nodes")
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestInProcess_PanicIsError(t *testing.T) {
	p := NewInProcess(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	status, body, err := p.Get(context.Background(), "/debug/static")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Zero(t, status)
	assert.Nil(t, body)
}

func TestInProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewInProcess(fixture()).Get(ctx, "/api/nodes")
	assert.ErrorIs(t, err, context.Canceled)
}

// Both transports must produce the same results for the same service.
func TestTransports_EquivalentResults(t *testing.T) {
	h := fixture()
	srv := httptest.NewServer(h)
	defer srv.Close()

	network, err := NewHTTP(srv.URL, 2*time.Second)
	require.NoError(t, err)

	viaNet, err := probe.NewRunner(nil, network, nil).Run(context.Background(), probe.DefaultChecks())
	require.NoError(t, err)
	viaProc, err := probe.NewRunner(nil, NewInProcess(h), nil).Run(context.Background(), probe.DefaultChecks())
	require.NoError(t, err)

	require.Len(t, viaNet, 3)
	require.Len(t, viaProc, 3)
	for i := range viaNet {
		require.True(t, viaNet[i].OK(), viaNet[i].Path)
		require.True(t, viaProc[i].OK(), viaProc[i].Path)
		assert.Equal(t, viaNet[i].Body.Value, viaProc[i].Body.Value, viaNet[i].Path)
	}

	items, ok := viaProc[1].Body.Items()
	require.True(t, ok)
	assert.Len(t, items, 8)
}
