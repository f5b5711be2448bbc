// Package resilience bounds how long and how often a blocking lookup runs.
//
// It offers a per-attempt Timeout and a Retry with backoff, composed by an
// Executor:
//
//	exec := resilience.NewExecutor(
//	    resilience.WithTimeout(5*time.Second),
//	    resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
//	        MaxAttempts: 3,
//	        RetryIf:     isTransient,
//	    })),
//	)
//
//	err := exec.Execute(ctx, func(ctx context.Context) error {
//	    payload, err = fetch(ctx, id)
//	    return err
//	})
//
// A zero Executor runs the operation once with the caller's context.
package resilience
