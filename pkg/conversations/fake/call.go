// Package fake is an in-memory conversations SDK for tests and the demo.
// Every SDK method records a Call; the caller finishes it later, or ahead of
// time with Reply, the way the real SDK eventually runs its completion.
package fake

import (
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/xpanvictor/rxconversations/pkg/conversations"
)

// Token counts cancellations.
type Token struct {
	cancels atomic.Int32
}

func (t *Token) Cancel()      { t.cancels.Add(1) }
func (t *Token) Cancels() int { return int(t.cancels.Load()) }

// Call is one recorded SDK method invocation.
type Call struct {
	Op    string
	Args  []any
	Done  any
	Token *Token

	finished atomic.Bool
}

// Finish runs the call's completion with res and payload. A nil payload
// passes the zero value of the completion's payload type. Only the first
// Finish has effect, as with the real SDK.
func (c *Call) Finish(res conversations.Result, payload any) {
	if !c.finished.CompareAndSwap(false, true) {
		return
	}
	switch done := c.Done.(type) {
	case func(conversations.Result):
		done(res)
	case func(conversations.Result, conversations.Client):
		done(res, as[conversations.Client](payload))
	case func(conversations.Result, conversations.Conversation):
		done(res, as[conversations.Conversation](payload))
	case func(conversations.Result, conversations.User):
		done(res, as[conversations.User](payload))
	case func(conversations.Result, conversations.Message):
		done(res, as[conversations.Message](payload))
	case func(conversations.Result, []conversations.Message):
		done(res, as[[]conversations.Message](payload))
	case func(conversations.Result, uint):
		done(res, as[uint](payload))
	case func(conversations.Result, *uint):
		done(res, as[*uint](payload))
	case func(conversations.Result, map[string]*url.URL):
		done(res, as[map[string]*url.URL](payload))
	default:
		panic("fake: unsupported completion for " + c.Op)
	}
}

// Finished reports whether Finish has run.
func (c *Call) Finished() bool { return c.finished.Load() }

func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

// OK is the Result of a successful SDK call.
var OK = conversations.Result{Successful: true}

// Failed is the Result of an SDK call that failed with err.
func Failed(err error) conversations.Result {
	return conversations.Result{Err: err}
}

// Count returns a pointer for optional-count payloads.
func Count(n uint) *uint { return &n }

type reply struct {
	res     conversations.Result
	payload any
}

// recorder is embedded by every fake SDK object.
type recorder struct {
	mu    sync.Mutex
	calls []*Call
	auto  map[string]reply
}

// Reply makes every later call to op finish immediately with res and payload.
func (r *recorder) Reply(op string, res conversations.Result, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.auto == nil {
		r.auto = make(map[string]reply)
	}
	r.auto[op] = reply{res: res, payload: payload}
}

// Calls returns the recorded calls to op, oldest first.
func (r *recorder) Calls(op string) []*Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Call
	for _, c := range r.calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent call to op, or nil.
func (r *recorder) Last(op string) *Call {
	calls := r.Calls(op)
	if len(calls) == 0 {
		return nil
	}
	return calls[len(calls)-1]
}

func (r *recorder) record(op string, done any, args ...any) *Call {
	call := &Call{Op: op, Args: args, Done: done, Token: &Token{}}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	auto, ok := r.auto[op]
	r.mu.Unlock()
	if ok {
		call.Finish(auto.res, auto.payload)
	}
	return call
}
