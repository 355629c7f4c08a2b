// Package deferred turns completion-callback operations into cold
// ro.Observables that settle exactly once.
//
// Each subscription invokes the wrapped operation once. The operation's
// callback reports a Reply; Value observables emit the payload and complete,
// Completion observables complete without emitting. Resolution order:
//
//  1. an explicit Reply.Err fails the observable with that error;
//  2. a Value whose reply is unsuccessful or lacks a payload fails with ErrUnknown;
//  3. otherwise it resolves.
//
// When the operation hands back a Canceller, unsubscribing before settlement
// cancels it. Cancellation and settlement race through one state machine, so
// the token is cancelled at most once and never after the operation settled.
package deferred

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/ro"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
)

// ErrUnknown is reported when an operation neither succeeded with the
// expected payload nor returned an error.
var ErrUnknown = errors.New("deferred: unknown failure")

type Void = struct{}

// Reply is what one SDK completion callback reported.
type Reply[T any] struct {
	Successful bool
	Err        error
	Payload    T
	HasPayload bool
}

// Canceller is the cancellation token some SDK operations return.
type Canceller interface {
	Cancel()
}

// CancelFunc adapts a plain function to Canceller.
type CancelFunc func()

func (f CancelFunc) Cancel() { f() }

// Call starts the operation and arranges for settle to be called with its
// outcome. It returns the operation's cancellation token, or nil.
type Call[T any] func(settle func(Reply[T])) Canceller

type options struct {
	log      *Logger.Logger
	onSettle func(op string, s State)
}

type Option func(*options)

func WithLogger(l *Logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSettleHook is called once per subscription with the terminal state.
func WithSettleHook(fn func(op string, s State)) Option {
	return func(o *options) { o.onSettle = fn }
}

// Value wraps an operation that yields a payload.
func Value[T any](op string, call Call[T], opts ...Option) ro.Observable[T] {
	return newDeferred(op, call, true, opts)
}

// Completion wraps an operation that only succeeds or fails.
func Completion(op string, call Call[Void], opts ...Option) ro.Observable[Void] {
	return newDeferred(op, call, false, opts)
}

func newDeferred[T any](op string, call Call[T], requirePayload bool, opts []Option) ro.Observable[T] {
	o := options{}
	for _, apply := range opts {
		apply(&o)
	}
	log := Logger.OrNop(o.log).Named("deferred")

	return ro.NewObservable(func(dst ro.Observer[T]) ro.Teardown {
		s := newSettlement(op, log, o.onSettle)
		s.log.Debugw("deferred started")

		token := call(func(reply Reply[T]) {
			v, err := outcome(reply, requirePayload)
			if err != nil {
				if !s.to(fail) {
					s.log.Debugw("late failure ignored", "error", err)
					return
				}
				dst.Error(err)
				return
			}
			if !s.to(resolve) {
				s.log.Debugw("late resolution ignored")
				return
			}
			if requirePayload {
				dst.Next(v)
			}
			dst.Complete()
		})

		return func() {
			// also runs after settlement; the machine rejects cancel then
			if s.to(cancel) && token != nil {
				s.log.Debugw("cancelling in-flight operation")
				token.Cancel()
			}
		}
	})
}

func outcome[T any](r Reply[T], requirePayload bool) (T, error) {
	var zero T
	if r.Err != nil {
		return zero, r.Err
	}
	if !requirePayload {
		return zero, nil
	}
	if !r.Successful || !r.HasPayload {
		return zero, ErrUnknown
	}
	return r.Payload, nil
}

// Await subscribes to src and blocks for its first value, its error or its
// completion. Cancelling ctx unsubscribes, which cancels a pending operation.
func Await[T any](ctx context.Context, src ro.Observable[T]) (T, error) {
	type result struct {
		v   T
		err error
	}
	done := make(chan result, 1)
	var once sync.Once
	finish := func(r result) {
		once.Do(func() { done <- r })
	}

	sub := src.Subscribe(ro.NewObserver(
		func(v T) { finish(result{v: v}) },
		func(err error) { finish(result{err: err}) },
		func() { finish(result{}) },
	))
	defer sub.Unsubscribe()

	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitCompletion is Await for observables whose value is irrelevant.
func AwaitCompletion[T any](ctx context.Context, src ro.Observable[T]) error {
	_, err := Await(ctx, src)
	return err
}
