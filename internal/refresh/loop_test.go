package refresh

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type renderLog struct {
	mu     sync.Mutex
	values []string
	errs   []error
}

func (r *renderLog) render(v any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v.(string))
}

func (r *renderLog) onError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *renderLog) snapshot() ([]string, []error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...), append([]error(nil), r.errs...)
}

func TestRunLoadsOnEachTickUntilCancelled(t *testing.T) {
	var calls atomic.Int64
	log := &renderLog{}

	loop := &Loop{
		Interval: 20 * time.Millisecond,
		Load: func(ctx context.Context) (any, error) {
			n := calls.Add(1)
			return fmt.Sprintf("load-%d", n), nil
		},
		Render:  log.render,
		OnError: log.onError,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	time.Sleep(110 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}

	afterCancel := calls.Load()
	if afterCancel < 3 {
		t.Fatalf("expected at least 3 loads (immediate + ticks), got %d", afterCancel)
	}

	// No further loads once stopped.
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != afterCancel {
		t.Fatalf("loads continued after cancel: %d -> %d", afterCancel, calls.Load())
	}

	values, errs := log.snapshot()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(values) == 0 {
		t.Fatal("nothing rendered")
	}
}

func TestStaleResultIsDiscarded(t *testing.T) {
	var calls atomic.Int64
	log := &renderLog{}

	loop := &Loop{
		Interval: 20 * time.Millisecond,
		Load: func(ctx context.Context) (any, error) {
			n := calls.Add(1)
			if n == 1 {
				// The first response lands long after newer requests were
				// issued; it must never reach the renderer.
				time.Sleep(90 * time.Millisecond)
				return "stale", nil
			}
			return fmt.Sprintf("fresh-%d", n), nil
		},
		Render:  log.render,
		OnError: log.onError,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	time.Sleep(160 * time.Millisecond)
	cancel()
	<-done

	values, _ := log.snapshot()
	if len(values) == 0 {
		t.Fatal("nothing rendered")
	}
	for _, v := range values {
		if v == "stale" {
			t.Fatalf("stale response was rendered: %v", values)
		}
	}
}

func TestFailingRefreshDoesNotStopLoop(t *testing.T) {
	var calls atomic.Int64
	log := &renderLog{}
	boom := errors.New("backend unavailable")

	loop := &Loop{
		Interval: 15 * time.Millisecond,
		Load: func(ctx context.Context) (any, error) {
			n := calls.Add(1)
			if n%2 == 1 {
				return nil, boom
			}
			return fmt.Sprintf("ok-%d", n), nil
		},
		Render:  log.render,
		OnError: log.onError,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	values, errs := log.snapshot()
	if len(errs) == 0 {
		t.Fatal("expected reported errors")
	}
	for _, err := range errs {
		if !errors.Is(err, boom) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(values) == 0 {
		t.Fatal("expected successful renders between failures")
	}
}

func TestOnce(t *testing.T) {
	log := &renderLog{}
	loop := &Loop{
		Load:   func(ctx context.Context) (any, error) { return "single", nil },
		Render: log.render,
	}
	if err := loop.Once(context.Background()); err != nil {
		t.Fatalf("Once: %v", err)
	}
	values, _ := log.snapshot()
	if len(values) != 1 || values[0] != "single" {
		t.Fatalf("values = %v", values)
	}

	boom := errors.New("nope")
	loop.Load = func(ctx context.Context) (any, error) { return nil, boom }
	if err := loop.Once(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestRunRejectsBadConstruction(t *testing.T) {
	loop := &Loop{Interval: 0, Load: func(ctx context.Context) (any, error) { return nil, nil }}
	if err := loop.Run(context.Background()); err == nil {
		t.Fatal("expected error for non-positive interval")
	}
	loop = &Loop{Interval: time.Second}
	if err := loop.Run(context.Background()); err == nil {
		t.Fatal("expected error for missing load function")
	}
}
