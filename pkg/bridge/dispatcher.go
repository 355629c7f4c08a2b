// Package bridge republishes delegate callbacks as reactive event streams.
//
// One Dispatcher exists per SDK session. The session's delegate proxy calls
// Dispatcher.Invoke for every callback; each call is appended to a raw
// invocation log (a publish subject). Stream filters that log by event name
// and runs the event's decoder, so every delegate method becomes an
// independently subscribable ro.Observable of a typed payload.
//
// Decoding is fail-fast: an argument of the wrong type, or an enum value the
// adapter does not know, terminates that subscriber's stream with a
// *TypeMismatchError or *EnumRangeError. Other subscribers, and other events
// on the same dispatcher, are unaffected.
package bridge

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/samber/ro"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge/tracering"
)

type Options struct {
	// TraceCapacity is the byte size of the recent-invocation ring; 0 disables it.
	TraceCapacity int
	// ForwardToDelegate makes proxies pass every callback on to the delegate
	// that was installed before them.
	ForwardToDelegate bool
}

func DefaultOptions() Options {
	return Options{
		TraceCapacity:     4096,
		ForwardToDelegate: true,
	}
}

type Stats struct {
	Published    uint64
	Unregistered uint64
	Dropped      uint64
}

type registration struct {
	stream any
}

type Dispatcher struct {
	id      uuid.UUID
	opts    Options
	log     *Logger.Logger
	subject ro.Subject[Invocation]
	trace   *tracering.Ring

	mu    sync.RWMutex
	table map[string]registration

	seq          atomic.Uint64
	unregistered atomic.Uint64
	dropped      atomic.Uint64

	releaseOnce sync.Once
	released    atomic.Bool
	detach      func()

	// Invoke calls still delivering; completion waits for the outermost one
	inflight        atomic.Int32
	completePending atomic.Bool
	completeOnce    sync.Once
}

func NewDispatcher(opts Options, log *Logger.Logger) *Dispatcher {
	id := uuid.New()
	d := &Dispatcher{
		id:      id,
		opts:    opts,
		log:     Logger.OrNop(log).Named("bridge").With("dispatcher", id.String()),
		subject: ro.NewPublishSubject[Invocation](),
		table:   make(map[string]registration),
	}
	if opts.TraceCapacity > 0 {
		d.trace = tracering.New(opts.TraceCapacity)
	}
	return d
}

func (d *Dispatcher) ID() uuid.UUID { return d.id }

func (d *Dispatcher) Options() Options { return d.opts }

// Invoke publishes one delegate callback. It never blocks on anything but the
// subscribers' own OnNext handlers, and is safe to call from any goroutine.
func (d *Dispatcher) Invoke(event string, args ...any) {
	d.inflight.Add(1)
	defer d.leave()

	if d.released.Load() {
		d.dropped.Add(1)
		d.log.Debugw("invocation after release dropped", "event", event)
		return
	}

	inv := Invocation{
		Seq:   d.seq.Add(1),
		Event: event,
		Args:  args,
		At:    time.Now(),
	}

	if !d.Registered(event) {
		d.unregistered.Add(1)
		d.log.Debugw("no stream registered for event", "event", event, "seq", inv.Seq)
	}

	if d.trace != nil {
		if err := d.trace.Append(tracering.Record{Seq: inv.Seq, Event: event, Arity: int16(len(args)), At: inv.At}); err != nil {
			d.log.Debugw("trace append failed", "event", event, "error", err)
		}
	}

	d.subject.Next(inv)
}

// Invocations exposes the raw invocation log. Subscribers see every
// callback published after they subscribe.
func (d *Dispatcher) Invocations() ro.Observable[Invocation] {
	return ro.NewObservable(func(dst ro.Observer[Invocation]) ro.Teardown {
		sub := d.subject.Subscribe(dst)
		return sub.Unsubscribe
	})
}

// Registered reports whether any stream has been requested for event.
func (d *Dispatcher) Registered(event string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.table[event]
	return ok
}

// Events lists the registered event names.
func (d *Dispatcher) Events() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.table))
	for name := range d.table {
		out = append(out, name)
	}
	return out
}

func (d *Dispatcher) lookup(event string) (any, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	reg, ok := d.table[event]
	return reg.stream, ok
}

// register stores stream for event unless another was stored first, and
// returns whichever is in the table.
func (d *Dispatcher) register(event string, stream any) any {
	d.mu.Lock()
	defer d.mu.Unlock()
	if reg, ok := d.table[event]; ok {
		return reg.stream
	}
	d.table[event] = registration{stream: stream}
	return stream
}

// Recent returns the newest n traced invocations, oldest first.
func (d *Dispatcher) Recent(n int) []tracering.Record {
	if d.trace == nil {
		return nil
	}
	return d.trace.Recent(n)
}

func (d *Dispatcher) Stats() Stats {
	return Stats{
		Published:    d.seq.Load(),
		Unregistered: d.unregistered.Load(),
		Dropped:      d.dropped.Load(),
	}
}

func (d *Dispatcher) Released() bool { return d.released.Load() }

// Release completes every stream, runs the detach hook installed by the
// registry and drops later invocations. Safe to call more than once, and
// from inside a subscriber: while an Invoke is delivering, completion is
// deferred until the outermost Invoke returns.
func (d *Dispatcher) Release() {
	d.releaseOnce.Do(func() {
		d.released.Store(true)
		if d.detach != nil {
			d.detach()
		}
		d.completePending.Store(true)
		if d.inflight.Load() == 0 {
			d.complete()
		} else {
			d.log.Debugw("release deferred until delivery returns")
		}
	})
}

func (d *Dispatcher) leave() {
	if d.inflight.Add(-1) == 0 && d.completePending.Load() {
		d.complete()
	}
}

func (d *Dispatcher) complete() {
	d.completeOnce.Do(func() {
		d.subject.Complete()
		d.log.Infow("dispatcher released", "published", d.seq.Load())
	})
}
