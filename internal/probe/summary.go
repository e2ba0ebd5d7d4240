package probe

import (
	"fmt"

	"go.uber.org/multierr"
)

// Summary counts the outcomes of a run.
type Summary struct {
	Total  int
	Passed int
	Failed int
	failed []ProbeResult
}

func Summarize(results []ProbeResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Passed++
			continue
		}
		s.Failed++
		s.failed = append(s.failed, r)
	}
	return s
}

// FailedPaths lists the paths of the checks that did not pass, in run order.
func (s Summary) FailedPaths() []string {
	out := make([]string, 0, len(s.failed))
	for _, r := range s.failed {
		out = append(out, r.Path)
	}
	return out
}

// Err combines every failed check into a single error, or nil when all passed.
func (s Summary) Err() error {
	var err error
	for _, r := range s.failed {
		if r.StatusCode == nil {
			err = multierr.Append(err, fmt.Errorf("%s: %s", r.Path, r.Error))
			continue
		}
		err = multierr.Append(err, fmt.Errorf("%s: status %d", r.Path, *r.StatusCode))
	}
	return err
}
