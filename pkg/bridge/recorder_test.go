package bridge

import (
	"sync"
	"testing"

	"github.com/samber/ro"
)

// recorder captures everything an observable delivers to one subscriber.
type recorder[T any] struct {
	mu        sync.Mutex
	values    []T
	err       error
	completed bool
	sub       ro.Subscription
}

func record[T any](t *testing.T, obs ro.Observable[T]) *recorder[T] {
	t.Helper()
	r := &recorder[T]{}
	r.sub = obs.Subscribe(ro.NewObserver(
		func(v T) {
			r.mu.Lock()
			r.values = append(r.values, v)
			r.mu.Unlock()
		},
		func(err error) {
			r.mu.Lock()
			r.err = err
			r.mu.Unlock()
		},
		func() {
			r.mu.Lock()
			r.completed = true
			r.mu.Unlock()
		},
	))
	t.Cleanup(r.sub.Unsubscribe)
	return r
}

func (r *recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.values...)
}

func (r *recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *recorder[T]) Completed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completed
}
