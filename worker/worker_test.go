package worker

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestGoResult(t *testing.T) {
	task := Go(func() (int, error) {
		return 42, nil
	})
	v, err := task.Result()
	if err != nil || v != 42 {
		t.Fatalf("expected (42, nil), got (%d, %v)", v, err)
	}
	if !task.Finished() {
		t.Fatalf("task should report finished after Result returned")
	}
}

func TestGoError(t *testing.T) {
	want := errors.New("boom")
	_, err := Go(func() (struct{}, error) {
		return struct{}{}, want
	}).Result()
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestGoPanicBecomesError(t *testing.T) {
	task := Go(func() (int, error) {
		panic("kaboom")
	})
	select {
	case <-task.Done():
	case <-time.After(5 * time.Second):
		t.Fatalf("task did not finish")
	}
	if _, err := task.Result(); err == nil {
		t.Fatalf("expected panic to be surfaced as an error")
	}
}

func TestParallelFor(t *testing.T) {
	const n = 64
	out := make([]int, n)
	var calls atomic.Int32
	ParallelFor(n, func(i int) {
		out[i] = i * i
		calls.Add(1)
	})
	if calls.Load() != n {
		t.Fatalf("expected %d calls, got %d", n, calls.Load())
	}
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}

	ParallelFor(0, func(int) { t.Fatalf("fn should not be called for n = 0") })
}

func TestSubmitDoesNotBlock(t *testing.T) {
	gate := make(chan struct{})
	n := runtime.NumCPU() * 4

	submitted := make(chan []*Task[int], 1)
	go func() {
		tasks := make([]*Task[int], 0, n)
		for i := 0; i < n; i++ {
			tasks = append(tasks, Go(func() (int, error) {
				<-gate
				return i, nil
			}))
		}
		submitted <- tasks
	}()

	var tasks []*Task[int]
	select {
	case tasks = <-submitted:
	case <-time.After(5 * time.Second):
		close(gate)
		t.Fatalf("submitting tasks blocked while every worker was busy")
	}
	close(gate)
	for i, task := range tasks {
		if v, err := task.Result(); err != nil || v != i {
			t.Fatalf("task %d: expected (%d, nil), got (%d, %v)", i, i, v, err)
		}
	}
}
