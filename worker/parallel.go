package worker

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
)

var (
	loopPool     pond.Pool
	loopPoolOnce sync.Once
)

func pool() pond.Pool {
	loopPoolOnce.Do(func() {
		loopPool = pond.NewPool(runtime.NumCPU())
	})
	return loopPool
}

// ParallelFor calls fn for every i in [0, n) on the shared loop pool and waits for all calls to
// return. Calls must not share mutable state other than disjoint parts of a slice.
func ParallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n == 1 {
		fn(0)
		return
	}

	group := pool().NewGroup()
	for i := 0; i < n; i++ {
		group.Submit(func() {
			fn(i)
		})
	}
	if err := group.Wait(); err != nil {
		// pond recovers task panics into errors.
		panic(err)
	}
}
