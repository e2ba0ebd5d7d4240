package probe

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var (
	ErrNoChecks    = errors.New("probe: no checks to run")
	ErrNoTransport = errors.New("probe: transport is nil")
)

type Runner struct {
	Logger    *zap.Logger
	Transport Transport
	Reporter  Reporter
}

func NewRunner(logger *zap.Logger, t Transport, rep Reporter) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Logger: logger, Transport: t, Reporter: rep}
}

// Run executes checks one after another and returns one result per check in
// input order. Each result is reported before the next check starts.
// Failures of individual checks are recorded in their results; the returned
// error only covers an unusable runner or an empty check list.
func (r *Runner) Run(ctx context.Context, checks []EndpointCheck) ([]ProbeResult, error) {
	if len(checks) == 0 {
		return nil, ErrNoChecks
	}
	if r.Transport == nil {
		return nil, ErrNoTransport
	}

	log := r.Logger.With(zap.String("run_id", ulid.Make().String()))
	log.Info("probe_run_started", zap.Int("checks", len(checks)))

	results := make([]ProbeResult, 0, len(checks))
	for _, c := range checks {
		res := r.check(ctx, c)
		results = append(results, res)

		if res.StatusCode == nil {
			log.Warn("probe_transport_error",
				zap.String("path", res.Path),
				zap.String("error", res.Error),
				zap.Float64("latency_ms", res.LatencyMS),
			)
		} else {
			log.Info("probe_checked",
				zap.String("path", res.Path),
				zap.Int("status", *res.StatusCode),
				zap.Bool("json", res.Body.JSON),
				zap.Float64("latency_ms", res.LatencyMS),
			)
		}
		if r.Reporter != nil {
			r.Reporter.Report(res)
		}
	}

	s := Summarize(results)
	log.Info("probe_run_finished",
		zap.Int("total", s.Total),
		zap.Int("passed", s.Passed),
		zap.Int("failed", s.Failed),
	)
	return results, nil
}

func (r *Runner) check(ctx context.Context, c EndpointCheck) ProbeResult {
	res := ProbeResult{Path: c.Path, Label: c.Name()}

	if err := ctx.Err(); err != nil {
		res.Error = err.Error()
		return res
	}

	start := time.Now()
	status, raw, err := r.Transport.Get(ctx, c.Path)
	res.LatencyMS = time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		res.Error = err.Error()
		if res.Error == "" {
			res.Error = "transport error"
		}
		return res
	}

	res.StatusCode = &status
	res.Body = DecodeBody(raw)
	return res
}
