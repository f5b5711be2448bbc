package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTimeout_Disabled(t *testing.T) {
	to := NewTimeout(0)

	err := to.Execute(context.Background(), func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); ok {
			t.Errorf("expected no deadline when disabled")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestTimeout_Expires(t *testing.T) {
	to := NewTimeout(10 * time.Millisecond)

	err := to.Execute(context.Background(), func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Execute() error = %v, want ErrTimeout", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Execute() error = %v, want wrapped DeadlineExceeded", err)
	}
}

func TestTimeout_ParentCancellationNotReportedAsTimeout(t *testing.T) {
	to := NewTimeout(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := to.Execute(ctx, func(ctx context.Context) error { return ctx.Err() })
	if errors.Is(err, ErrTimeout) {
		t.Fatalf("parent cancellation should not be ErrTimeout: %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Execute() error = %v, want context.Canceled", err)
	}
}
