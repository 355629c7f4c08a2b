package conversations

import (
	"github.com/samber/lo"
	"github.com/xpanvictor/rxconversations/pkg/deferred"
)

// SDK callbacks sometimes carry a typed nil *Error in Result.Err.
func resultErr(r Result) error {
	if e, ok := r.Err.(*Error); ok && e == nil {
		return nil
	}
	return r.Err
}

func completion(settle func(deferred.Reply[deferred.Void])) func(Result) {
	return func(r Result) {
		settle(deferred.Reply[deferred.Void]{Successful: r.Successful, Err: resultErr(r)})
	}
}

// reply adapts a (Result, payload) callback. present decides whether the
// SDK actually delivered a payload.
func reply[T any](settle func(deferred.Reply[T]), present func(T) bool) func(Result, T) {
	return func(r Result, v T) {
		settle(deferred.Reply[T]{
			Successful: r.Successful,
			Err:        resultErr(r),
			Payload:    v,
			HasPayload: present(v),
		})
	}
}

// optionalCount adapts callbacks whose count may be absent. An absent count
// is not the same as zero and resolves to deferred.ErrUnknown.
func optionalCount(settle func(deferred.Reply[uint])) func(Result, *uint) {
	return func(r Result, n *uint) {
		rep := deferred.Reply[uint]{Successful: r.Successful, Err: resultErr(r)}
		if n != nil {
			rep.Payload, rep.HasPayload = *n, true
		}
		settle(rep)
	}
}

// notNil treats a nil pointer inside an interface as absent too; the SDK's
// nil entity is not an entity.
func notNil[T any](v T) bool { return !lo.IsNil(v) }

// canceller converts an SDK token. A nil token, typed or not, means the
// request cannot be cancelled.
func canceller(t CancellationToken) deferred.Canceller {
	if lo.IsNil(t) {
		return nil
	}
	return t
}

func sliceSet[E any](s []E) bool { return s != nil }

func mapSet[K comparable, V any](m map[K]V) bool { return m != nil }

// counts are plain values; zero is a valid answer
func always[T any](T) bool { return true }
