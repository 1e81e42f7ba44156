// Package bench times the persistent stack against mutable linked lists.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nathanfaucett/persistent-list/internal/concurrency"
	"github.com/nathanfaucett/persistent-list/internal/config"
	"github.com/nathanfaucett/persistent-list/pkg/logger"
	"github.com/nathanfaucett/persistent-list/pkg/stack"
)

const tracerName = "internal/bench"

// Result summarizes the samples of one scenario. Durations are per round, in nanoseconds.
type Result struct {
	Scenario string   `json:"scenario"`
	Op       Op       `json:"op"`
	Kind     ListKind `json:"kind"`
	Size     int      `json:"size"`
	Samples  int      `json:"samples"`
	Rounds   int      `json:"rounds"`
	MeanNs   float64  `json:"mean_ns"`
	StdDevNs float64  `json:"stddev_ns"`
	MinNs    float64  `json:"min_ns"`
	MaxNs    float64  `json:"max_ns"`
}

// Runner executes benchmark scenarios.
type Runner struct {
	cfg       config.BenchConfig
	scenarios []Scenario
	logger    logger.Logger
	tracer    trace.Tracer
	metrics   *metrics
}

// RunnerOption configures a Runner created by NewRunner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithRegisterer registers the harness metrics on reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) RunnerOption {
	return func(r *Runner) {
		r.metrics = newMetrics(reg)
	}
}

// WithTracerProvider sets the provider spans are created from. The default is the global provider.
func WithTracerProvider(tp trace.TracerProvider) RunnerOption {
	return func(r *Runner) {
		r.tracer = tp.Tracer(tracerName)
	}
}

// NewRunner validates cfg and the scenarios it names and returns a Runner for them.
func NewRunner(cfg config.BenchConfig, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Verify(); err != nil {
		return nil, err
	}

	scenarios, err := Scenarios(cfg.Scenarios)
	if err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:       cfg,
		scenarios: scenarios,
		logger:    logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.metrics == nil {
		r.metrics = newMetrics(prometheus.NewRegistry())
	}
	if r.tracer == nil {
		r.tracer = otel.Tracer(tracerName)
	}

	return r, nil
}

// Run executes every scenario in order and returns their results. It stops at
// the first failing scenario, or when ctx is done.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	results := make([]Result, 0, len(r.scenarios))
	for _, s := range r.scenarios {
		res, err := r.runScenario(ctx, s)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", s, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runScenario(ctx context.Context, s Scenario) (Result, error) {
	name := s.String()
	ctx, span := r.tracer.Start(ctx, "bench.scenario", trace.WithAttributes(
		attribute.String("scenario", name),
		attribute.Int("size", r.cfg.Size),
		attribute.Int("samples", r.cfg.Samples),
		attribute.Int("rounds", r.cfg.Rounds),
	))
	defer span.End()

	log := r.logger.With(zap.String("scenario", name))

	round, cleanup, err := r.prepare(s)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	defer cleanup()

	durations := r.metrics.roundDuration.WithLabelValues(name)
	rounds := r.metrics.rounds.WithLabelValues(name)

	samples := make([]float64, 0, r.cfg.Samples)
	for i := range r.cfg.Samples {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Result{}, err
		}

		start := time.Now()
		for range r.cfg.Rounds {
			if err := round(ctx); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				return Result{}, err
			}
		}
		perRound := time.Since(start) / time.Duration(r.cfg.Rounds)

		durations.Observe(perRound.Seconds())
		rounds.Add(float64(r.cfg.Rounds))
		samples = append(samples, float64(perRound.Nanoseconds()))

		log.Debug("sample complete", zap.Int("sample", i), zap.Duration("per_round", perRound))
	}

	res := summarize(s, r.cfg, samples)
	span.SetAttributes(attribute.Float64("mean_ns", res.MeanNs))
	log.Info("scenario complete",
		zap.Float64("mean_ns", res.MeanNs),
		zap.Float64("stddev_ns", res.StdDevNs),
	)

	return res, nil
}

// prepare builds the fixture for s and returns the function timed once per
// round, together with a cleanup releasing the fixture.
func (r *Runner) prepare(s Scenario) (func(context.Context) error, func(), error) {
	size := r.cfg.Size

	switch s.Op {
	case OpPush:
		if _, err := newList(s.Kind); err != nil {
			return nil, nil, err
		}
		return func(context.Context) error {
			l, err := newList(s.Kind)
			if err != nil {
				return err
			}
			fill(l, size)
			l.release()
			return nil
		}, func() {}, nil

	case OpIter:
		l, err := newList(s.Kind)
		if err != nil {
			return nil, nil, err
		}
		fill(l, size)
		return func(context.Context) error {
			return checkOrder(l.walk, size)
		}, l.release, nil

	case OpIterParallel:
		base := &persistentList{}
		fill(base, size)
		parallelism := r.cfg.Parallelism
		return func(ctx context.Context) error {
			return concurrency.ForEach(ctx, parallelism, parallelism, func(_ context.Context, _ int) error {
				reader := base.s.Clone()
				defer reader.Release()
				return checkOrder(walkStack(reader), size)
			})
		}, base.release, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownScenario, s)
	}
}

func walkStack(s stack.Stack[int]) func(func(int) bool) {
	return func(fn func(int) bool) {
		for v := range s.All() {
			if !fn(v) {
				return
			}
		}
	}
}

// checkOrder walks a list filled by fill and verifies it yields size-1 down to 0.
func checkOrder(walk func(func(int) bool), size int) error {
	want := size
	var err error
	walk(func(v int) bool {
		want--
		if v != want {
			err = fmt.Errorf("%w: got %d, want %d", ErrOrderMismatch, v, want)
			return false
		}
		return true
	})
	if err == nil && want != 0 {
		err = fmt.Errorf("%w: walked %d values, want %d", ErrOrderMismatch, size-want, size)
	}
	return err
}

func summarize(s Scenario, cfg config.BenchConfig, samples []float64) Result {
	res := Result{
		Scenario: s.String(),
		Op:       s.Op,
		Kind:     s.Kind,
		Size:     cfg.Size,
		Samples:  len(samples),
		Rounds:   cfg.Rounds,
	}
	if len(samples) == 0 {
		return res
	}

	res.MeanNs, res.StdDevNs = stat.MeanStdDev(samples, nil)
	if len(samples) == 1 {
		// the unbiased estimator is undefined for a single sample.
		res.StdDevNs = 0
	}
	res.MinNs = floats.Min(samples)
	res.MaxNs = floats.Max(samples)
	return res
}
