package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/roadref/config"
	"github.com/katalvlaran/roadref/openlr"
	"github.com/katalvlaran/roadref/scenario"
	"github.com/katalvlaran/roadref/stats"
)

type connectFlags struct {
	scenarios []string
	config    string
	envFile   string
	tolerance float64
	json      bool
	trace     bool
	metrics   bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roadref",
		Short:         "Connect OpenLR candidate paths over a road graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newConnectCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "roadref %s\n", version)
			return err
		},
	}
}

func newConnectCmd() *cobra.Command {
	var f connectFlags
	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect the candidate paths of every segment in one or more scenarios",
		Long: `Connect loads each scenario, builds its road graph and resolves one path per
segment. Several scenarios are processed concurrently and printed in the order given.
The command fails if any scenario has an unresolved segment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConnect(cmd.Context(), f, cmd.Flags().Changed("tolerance"), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVarP(&f.scenarios, "scenario", "s", nil, "scenario file (YAML or JSON); repeatable")
	fl.StringVarP(&f.config, "config", "c", "", "config file (YAML)")
	fl.StringVar(&f.envFile, "env-file", "", "optional .env file with ROADREF_* overrides")
	fl.Float64Var(&f.tolerance, "tolerance", config.DefaultPathLengthTolerance, "path length tolerance, overrides config")
	fl.BoolVar(&f.json, "json", false, "print results as JSON")
	fl.BoolVar(&f.trace, "trace", false, "export spans to stderr")
	fl.BoolVar(&f.metrics, "metrics", false, "print Prometheus metrics after the run")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

// outcome is the result of one scenario.
type outcome struct {
	parts []openlr.EdgeSequence
	err   error
}

func runConnect(ctx context.Context, f connectFlags, toleranceSet bool, stdout, stderr io.Writer) error {
	cfg, err := config.LoadWithEnv(f.config, f.envFile)
	if err != nil {
		return err
	}
	if toleranceSet {
		cfg.PathLengthTolerance = f.tolerance
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	runID := uuid.NewString()[:8]
	logger := config.NewLogger(cfg.Log, stderr).With(slog.String("run_id", runID))

	opts := []openlr.Option{openlr.WithLogger(logger)}
	if f.trace || cfg.Tracing.Enabled {
		tp, err := newTracerProvider(stderr)
		if err != nil {
			return err
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Warn("tracer shutdown", slog.Any("error", err))
			}
		}()
		tracer := tp.Tracer(tracerName)
		opts = append(opts, openlr.WithTracer(tracer))

		var span trace.Span
		ctx, span = tracer.Start(ctx, "roadref.connect", trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.StringSlice("scenarios", f.scenarios),
		))
		defer span.End()
	}

	reg := prometheus.NewRegistry()
	st := stats.New(reg)
	start := time.Now()

	results := make([]outcome, len(f.scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range f.scenarios {
		i, path := i, path
		g.Go(func() error {
			parts, err := connectScenario(gctx, path, cfg.PathLengthTolerance, st, logger, opts)
			if err == nil {
				st.IncConnected()
			}
			results[i] = outcome{parts: parts, err: err}
			// failures are reported per scenario, never cancel siblings
			return nil
		})
	}
	_ = g.Wait()

	logger.Info("connection finished",
		slog.Int("scenarios", len(f.scenarios)),
		slog.Duration("elapsed", time.Since(start)),
		slog.Any("stats", st))

	var errs []error
	for i, res := range results {
		if res.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.scenarios[i], res.err))
			continue
		}
		if len(f.scenarios) > 1 && !f.json {
			if _, err := fmt.Fprintf(stdout, "== %s\n", f.scenarios[i]); err != nil {
				return err
			}
		}
		if err := scenario.Render(stdout, res.parts, f.json); err != nil {
			return err
		}
	}
	if f.metrics {
		if err := writeMetrics(stdout, reg); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}

// connectScenario loads one scenario and connects its candidates.
func connectScenario(ctx context.Context, path string, tolerance float64, st *stats.Stats, logger *slog.Logger, opts []openlr.Option) ([]openlr.EdgeSequence, error) {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		return nil, err
	}
	in, err := sc.Build()
	if err != nil {
		return nil, err
	}
	logger.Debug("scenario loaded",
		slog.String("path", path),
		slog.Int("edges", in.Graph.EdgeCount()),
		slog.Int("points", len(in.Points)))

	conn, err := openlr.NewPathsConnector(tolerance, in.Graph, st, opts...)
	if err != nil {
		return nil, err
	}

	return conn.ConnectCandidates(ctx, in.Points, in.Candidates)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
