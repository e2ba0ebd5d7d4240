package probe

import "context"

// EndpointCheck is a single GET target plus the label used when reporting it.
type EndpointCheck struct {
	Path  string `json:"path" yaml:"path"`
	Label string `json:"label" yaml:"label"`
}

// Name returns the label, falling back to the path.
func (c EndpointCheck) Name() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Path
}

// Body is a response body after decoding. When JSON is false, Value is nil
// and Raw carries the text as received.
type Body struct {
	Value any    `json:"value,omitempty"`
	Raw   string `json:"raw"`
	JSON  bool   `json:"json"`
}

// ProbeResult is the outcome of executing one EndpointCheck.
//
// Error is set if and only if no HTTP exchange completed; in that case
// StatusCode and Body are nil.
type ProbeResult struct {
	Path       string  `json:"path"`
	Label      string  `json:"label"`
	StatusCode *int    `json:"status_code"` // pointer to allow nil
	Body       *Body   `json:"body,omitempty"`
	Error      string  `json:"error,omitempty"`
	LatencyMS  float64 `json:"latency_ms"`
}

// OK reports whether the exchange completed with a 2xx status.
func (r ProbeResult) OK() bool {
	return r.StatusCode != nil && *r.StatusCode >= 200 && *r.StatusCode < 300
}

// Transport issues a GET for a path against some target and returns the raw
// exchange. Any status code is a completed exchange; err is reserved for
// failures where no response was obtained.
type Transport interface {
	Get(ctx context.Context, path string) (status int, body []byte, err error)
}

// Reporter receives each result as soon as it is produced.
type Reporter interface {
	Report(r ProbeResult)
}

// DefaultChecks is the built-in check list.
func DefaultChecks() []EndpointCheck {
	return []EndpointCheck{
		{Path: "/debug/static", Label: "debug static"},
		{Path: "/api/nodes", Label: "nodes"},
		{Path: "/api/stats", Label: "stats"},
	}
}
