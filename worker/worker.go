package worker

import (
	"runtime"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/voxel/oerror"
	"github.com/sirupsen/logrus"
)

// backgroundPool runs tasks on at most one goroutine per CPU. Its queue is unbounded, so submitting
// never waits for a worker to free up.
var backgroundPool = pond.NewPool(runtime.NumCPU())

// Submit queues f to run on a background worker. To be used by a function that may be CPU intensive.
// It never blocks.
func Submit(f func()) {
	if err := backgroundPool.Go(func() {
		defer sentry.Recover()
		f()
	}); err != nil {
		logrus.Errorf("unable to submit background task: %v", err)
	}
}

// Task is the handle to a function running on a background worker.
type Task[T any] struct {
	done   chan struct{}
	result T
	err    error
}

// Go runs f on a background worker and returns a handle to its result. A panic inside f is
// reported to sentry and surfaced as the task's error.
func Go[T any](f func() (T, error)) *Task[T] {
	t := &Task[T]{done: make(chan struct{})}
	Submit(func() {
		defer close(t.done)
		defer func() {
			if v := recover(); v != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Recover(v)
				hub.Flush(time.Second)

				t.err = oerror.FromRecover(v)
				logrus.Warnf("background task panicked: %v", v)
			}
		}()
		t.result, t.err = f()
	})
	return t
}

// Done returns a channel that is closed once the task has finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}

// Finished returns true if the task has completed, without blocking.
func (t *Task[T]) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Result blocks until the task has finished and returns its result.
func (t *Task[T]) Result() (T, error) {
	<-t.done
	return t.result, t.err
}
