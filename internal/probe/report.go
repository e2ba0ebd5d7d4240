package probe

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// TextReporter prints human-readable lines for each result. It also keeps
// the results it has seen so a summary can be printed at the end.
type TextReporter struct {
	mu      sync.Mutex
	w       io.Writer
	results []ProbeResult
}

func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Report(r ProbeResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, r)

	if len(t.results) > 1 {
		fmt.Fprintln(t.w)
	}
	fmt.Fprintf(t.w, "Testing %s (%s)...\n", r.Label, r.Path)

	if r.StatusCode == nil {
		fmt.Fprintf(t.w, "Error: %s\n", r.Error)
		return
	}
	fmt.Fprintf(t.w, "Status: %d\n", *r.StatusCode)

	if !r.OK() {
		fmt.Fprintf(t.w, "Error: %s\n", truncate(r.Body.Raw))
		return
	}
	if !r.Body.JSON {
		fmt.Fprintf(t.w, "Response: %s\n", truncate(r.Body.Raw))
		return
	}
	if items, ok := r.Body.Items(); ok {
		fmt.Fprintf(t.w, "Received %d items\n", len(items))
		if len(items) > 0 {
			fmt.Fprintf(t.w, "Sample item: %s\n", indentJSON(items[0]))
		}
		return
	}
	fmt.Fprintf(t.w, "Response: %s\n", indentJSON(r.Body.Value))
}

// Summary prints the pass count and the failing paths.
func (t *TextReporter) Summary() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Summarize(t.results)
	fmt.Fprintf(t.w, "\nSummary: %d/%d checks passed\n", s.Passed, s.Total)
	if s.Failed > 0 {
		fmt.Fprintf(t.w, "Failed: %s\n", strings.Join(s.FailedPaths(), ", "))
	}
	return s
}
