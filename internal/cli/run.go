package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/envloader/loader"
	"github.com/jonwraymond/envloader/observe"
	"github.com/jonwraymond/envloader/secret"
	"github.com/jonwraymond/envloader/secret/awssm"
)

// shutdownTimeout bounds the telemetry flush before exec.
const shutdownTimeout = 5 * time.Second

// newResolver builds the secret resolver. Tests replace it to avoid AWS.
var newResolver = func(opts Options) (*secret.Resolver, error) {
	reg := secret.NewRegistry()
	if err := awssm.Register(reg); err != nil {
		return nil, err
	}
	return reg.NewResolver(map[string]map[string]any{
		secret.AWSSecretsManagerMarker: opts.providerConfig(),
	})
}

func run(ctx context.Context, opts Options, rt host) error {
	if ctx == nil {
		ctx = context.Background()
	}

	snap := loader.NewSnapshot(rt.environ())

	obs, err := observe.NewObserver(ctx, opts.observeConfig(rt.stderr))
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	logger := obs.Logger()

	shutdown := func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := obs.Shutdown(sctx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", observe.F("error", err))
		}
	}

	mw, err := observe.MiddlewareFromObserver(obs)
	if err != nil {
		shutdown()
		return fmt.Errorf("create telemetry middleware: %w", err)
	}

	resolver, err := newResolver(opts)
	if err != nil {
		shutdown()
		return fmt.Errorf("create secret resolver: %w", err)
	}

	engine := loader.NewEngine(opts.Loader, resolver,
		loader.WithLogger(logger),
		loader.WithMiddleware(mw),
	)
	env, loadErr := engine.Load(ctx, snap)

	if err := resolver.Close(); err != nil {
		logger.Warn(ctx, "closing secret providers failed", observe.F("error", err))
	}

	if loadErr != nil {
		var abort *loader.AbortError
		if errors.As(loadErr, &abort) {
			logger.Error(ctx, "could not resolve variable, not starting command",
				observe.F("variable", abort.Name),
				observe.F("error", abort.Err),
			)
		}
		shutdown()
		return &ExitError{Code: ExitResolution, Err: loadErr}
	}

	logger.Debug(ctx, "environment ready",
		observe.F("variables", env.Len()),
		observe.F("command", opts.Command[0]),
	)
	shutdown()

	if opts.DryRun {
		for _, name := range env.Names() {
			fmt.Fprintln(rt.stdout, name)
		}
		return nil
	}

	return launchError(rt.exec(opts.Command, env.Pairs()))
}
