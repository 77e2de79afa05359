package busan

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSpawnerHandleLifecycle(t *testing.T) {
	t.Parallel()

	exec := NewSpawner()
	release := make(chan struct{})

	h := exec.Spawn(func(context.Context) error {
		<-release
		return nil
	})

	if !h.Active() {
		t.Fatal("expected active handle while task runs")
	}
	if err := h.Err(); err != nil {
		t.Fatalf("expected err=nil before completion, got %v", err)
	}

	close(release)
	<-h.Done()

	if h.Active() {
		t.Fatal("expected inactive handle after done")
	}
	if err := h.Err(); err != nil {
		t.Fatalf("expected err=nil after clean completion, got %v", err)
	}
}

func TestSpawnerErrSurfacesTaskError(t *testing.T) {
	t.Parallel()

	exec := NewSpawner()
	errBoom := errors.New("boom")

	h := exec.Spawn(func(context.Context) error {
		return errBoom
	})
	<-h.Done()

	if !errors.Is(h.Err(), errBoom) {
		t.Fatalf("expected boom, got %v", h.Err())
	}
}

func TestSpawnerCancelIsIdempotent(t *testing.T) {
	t.Parallel()

	exec := NewSpawner()
	h := exec.Spawn(func(ctx context.Context) error {
		<-ctx.Done()
		return context.Cause(ctx)
	})

	h.Cancel()
	h.Cancel()
	<-h.Done()

	if !errors.Is(h.Err(), ErrTaskCanceled) {
		t.Fatalf("expected ErrTaskCanceled, got %v", h.Err())
	}

	// After completion Cancel stays a no-op.
	h.Cancel()
	if h.Active() {
		t.Fatal("expected inactive handle")
	}
}

func TestSpawnerPanicToError(t *testing.T) {
	t.Parallel()

	exec := NewSpawner()
	h := exec.Spawn(func(context.Context) error {
		panic("kaboom")
	})
	<-h.Done()

	err := h.Err()
	if err == nil {
		t.Fatal("expected panic to be converted to error")
	}
	if !strings.Contains(err.Error(), "panic recovered: kaboom") {
		t.Fatalf("unexpected panic error: %v", err)
	}
}

func TestSpawnerWithContextCancelsTasks(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	exec := NewSpawner(WithContext(ctx))

	h := exec.Spawn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	cancel()
	<-h.Done()

	if !errors.Is(h.Err(), context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", h.Err())
	}
	exec.Wait()
}

func TestSpawnerSpawnPanicsOnNilTask(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for nil task")
		}
	}()

	NewSpawner().Spawn(nil)
}
