package pipeline

import (
	"context"
	"fmt"
	"log/slog"
)

// Step is one stage of record assembly.
type Step[S any] interface {
	// Do advances the shared state. An error aborts the record.
	Do(ctx context.Context, state S) error

	// Name returns the step's name for logging and failure reports.
	Name() string
}

// StepFunc adapts a function to the Step interface.
type StepFunc[S any] struct {
	name string
	fn   func(ctx context.Context, state S) error
}

// NewStep returns a Step named name that runs fn.
func NewStep[S any](name string, fn func(ctx context.Context, state S) error) StepFunc[S] {
	return StepFunc[S]{name: name, fn: fn}
}

// Do implements Step.
func (s StepFunc[S]) Do(ctx context.Context, state S) error { return s.fn(ctx, state) }

// Name implements Step.
func (s StepFunc[S]) Name() string { return s.name }

// StepError reports the step a record failed in.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Pipeline runs its steps in order over one state.
type Pipeline[S any] struct {
	// steps contains the ordered list of steps to execute.
	steps []Step[S]

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// options holds settings shared by pipelines, assemblers and batches.
type options struct {
	logger *slog.Logger
}

// Option configures a Pipeline, an assembler or a BatchProcessor.
type Option func(*options)

// WithLogger sets a custom logger. slog.Default is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// New creates an empty Pipeline.
func New[S any](opts ...Option) *Pipeline[S] {
	o := applyOptions(opts)
	return &Pipeline[S]{
		steps:  make([]Step[S], 0),
		logger: o.logger,
	}
}

// AddStep appends a step to the pipeline.
func (p *Pipeline[S]) AddStep(step Step[S]) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline[S]) AddSteps(steps ...Step[S]) {
	p.steps = append(p.steps, steps...)
}

// Execute runs every step in order and stops at the first failure, which
// is returned as a *StepError. Cancellation is checked before each step.
func (p *Pipeline[S]) Execute(ctx context.Context, state S) error {
	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			return &StepError{Step: step.Name(), Err: ctx.Err()}
		default:
		}

		if err := step.Do(ctx, state); err != nil {
			return &StepError{Step: step.Name(), Err: err}
		}
		p.logger.Debug("step completed", "step", step.Name())
	}
	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline[S]) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline[S]) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
