package loader

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/envloader/observe"
	"github.com/jonwraymond/envloader/secret"
)

// ValueResolver classifies and resolves raw values. *secret.Resolver
// implements it.
type ValueResolver interface {
	Parse(raw string) secret.Reference
	Resolve(ctx context.Context, raw string) secret.Outcome
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for warnings. Default: no logging.
func WithLogger(l observe.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMiddleware wraps every resolution with telemetry.
func WithMiddleware(m *observe.Middleware) Option {
	return func(e *Engine) {
		e.middleware = m
	}
}

// Engine turns a Snapshot into the child Environment.
type Engine struct {
	cfg        Config
	classifier *Classifier
	resolver   ValueResolver
	logger     observe.Logger
	middleware *observe.Middleware
}

// NewEngine creates an engine. cfg should already be validated.
func NewEngine(cfg Config, resolver ValueResolver, opts ...Option) *Engine {
	e := &Engine{
		cfg:        cfg,
		classifier: NewClassifier(cfg),
		resolver:   resolver,
		logger:     observe.NopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan classifies every variable of snap in name order without resolving
// anything.
func (e *Engine) Plan(snap Snapshot) []Decision {
	vars := snap.Variables()
	decisions := make([]Decision, len(vars))
	for i, v := range vars {
		decisions[i] = e.classifier.Classify(v)
	}
	return decisions
}

// Load builds the child environment from snap.
//
// Variables are processed in name order. Pass-through and out-of-scope
// variables are copied; the rest are resolved. The first failure, in name
// order, aborts the load with an *AbortError unless IgnoreMissing is set, in
// which case the variable is omitted and a warning is logged. When two
// variables map to the same output name the later one wins and the overwrite
// is logged.
func (e *Engine) Load(ctx context.Context, snap Snapshot) (*Environment, error) {
	e.warnMissingPass(ctx, snap)

	decisions := e.Plan(snap)

	var outcomes []secret.Outcome
	if e.cfg.Concurrency > 1 {
		var err error
		outcomes, err = e.resolveParallel(ctx, decisions)
		if err != nil {
			return nil, err
		}
	}

	env := NewEnvironment()
	for i, d := range decisions {
		if d.Kind != NeedsResolution {
			e.set(ctx, env, d, d.Variable.Value)
			continue
		}

		var out secret.Outcome
		if outcomes != nil {
			out = outcomes[i]
		} else {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			out = e.resolve(ctx, d)
		}

		if out.Err != nil {
			if !e.cfg.IgnoreMissing {
				return nil, &AbortError{Name: d.Variable.Name, OutputName: d.OutputName, Err: out.Err}
			}
			e.logger.Warn(ctx, "variable could not be resolved, skipping",
				observe.F("variable", d.Variable.Name),
				observe.F("method", out.Method.String()),
				observe.F("error", out.Err),
			)
			continue
		}
		e.set(ctx, env, d, out.Value)
	}

	return env, nil
}

func (e *Engine) set(ctx context.Context, env *Environment, d Decision, value string) {
	if env.Set(d.OutputName, value) {
		e.logger.Warn(ctx, "variable overwritten",
			observe.F("variable", d.OutputName),
			observe.F("source", d.Variable.Name),
			observe.F("decision", d.Kind.String()),
		)
	}
}

func (e *Engine) warnMissingPass(ctx context.Context, snap Snapshot) {
	for _, name := range e.cfg.Pass {
		if _, ok := snap.Lookup(name); !ok {
			e.logger.Warn(ctx, "variable not found in environment, cannot pass through",
				observe.F("variable", name),
			)
		}
	}
}

// resolveParallel resolves every NeedsResolution decision with at most
// Concurrency lookups in flight. Outcomes are indexed like decisions, so the
// caller applies the failure policy in name order regardless of completion
// order. A failed lookup does not cancel the others.
func (e *Engine) resolveParallel(ctx context.Context, decisions []Decision) ([]secret.Outcome, error) {
	outcomes := make([]secret.Outcome, len(decisions))

	var g errgroup.Group
	g.SetLimit(e.cfg.Concurrency)
	for i, d := range decisions {
		if d.Kind != NeedsResolution {
			continue
		}
		g.Go(func() error {
			outcomes[i] = e.resolve(ctx, d)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (e *Engine) resolve(ctx context.Context, d Decision) secret.Outcome {
	ref := e.resolver.Parse(d.Variable.Value)

	if d.OutputName == "" {
		return secret.Outcome{
			Method: ref.Method,
			Err:    fmt.Errorf("%w: %q has nothing after the prefix", ErrEmptyName, d.Variable.Name),
		}
	}

	if e.middleware == nil {
		return e.resolver.Resolve(ctx, d.Variable.Value)
	}

	meta := observe.VarMeta{
		Name:       d.Variable.Name,
		OutputName: d.OutputName,
		Method:     ref.Method.String(),
		Marker:     ref.Marker,
	}

	var out secret.Outcome
	_, _ = e.middleware.Wrap(func(ctx context.Context, _ observe.VarMeta) (string, error) {
		out = e.resolver.Resolve(ctx, d.Variable.Value)
		return out.Value, out.Err
	})(ctx, meta)
	return out
}
