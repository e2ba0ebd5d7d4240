package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/endpointprobe/internal/config"
	"github.com/hamed0406/endpointprobe/internal/httpapi"
	"github.com/hamed0406/endpointprobe/internal/logging"
	"github.com/hamed0406/endpointprobe/internal/probe"
	"github.com/hamed0406/endpointprobe/internal/repo/memory"
	"github.com/hamed0406/endpointprobe/internal/transport"
)

// ErrProbesFailed is returned in strict mode when any check did not pass.
var ErrProbesFailed = errors.New("one or more checks failed")

// NewRootCmd creates the root cobra command. Defaults come from the
// environment and are overridden by flags.
func NewRootCmd() *cobra.Command {
	cfg := config.FromEnv()

	cmd := &cobra.Command{
		Use:           "endpointprobe",
		Short:         "Run smoke checks against the service endpoints",
		Long:          "endpointprobe issues a fixed sequence of GET checks against a service, over the network or in-process, and prints a result per check.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.ChecksFile, "checks", cfg.ChecksFile, "YAML file with the checks to run (default: built-in list)")
	cmd.PersistentFlags().StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "directory for structured logs")
	cmd.PersistentFlags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when any check fails")

	cmd.AddCommand(newNetworkCmd(&cfg), newInProcessCmd(&cfg))
	return cmd
}

func newNetworkCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Probe a running service over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := transport.NewHTTP(cfg.BaseURL, cfg.HTTPTimeout)
			if err != nil {
				return err
			}
			return run(cmd, *cfg, "Testing API at "+t.BaseURL, func(*zap.Logger) probe.Transport { return t })
		},
	}
	cmd.Flags().StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the service under test")
	cmd.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "per-request timeout (0 = none)")
	return cmd
}

func newInProcessCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inprocess",
		Short: "Probe the built-in service handler without opening a socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, *cfg, "Testing API endpoints directly", func(l *zap.Logger) probe.Transport {
				srv := httpapi.NewServer(l.Named("fixture"), memory.NewSeeded())
				return transport.NewInProcess(srv.Router())
			})
		},
	}
}

func run(cmd *cobra.Command, cfg config.Config, banner string, newTransport func(*zap.Logger) probe.Transport) error {
	checks, err := config.LoadChecks(cfg.ChecksFile)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s...\n\n", banner)
	rep := probe.NewTextReporter(out)
	runner := probe.NewRunner(logger, newTransport(logger), rep)

	if _, err := runner.Run(cmd.Context(), checks); err != nil {
		return err
	}
	s := rep.Summary()
	if cfg.Strict && s.Failed > 0 {
		return fmt.Errorf("%w: %v", ErrProbesFailed, s.Err())
	}
	return nil
}
