package bridge

import (
	"sync/atomic"

	"github.com/samber/ro"
)

// Event binds a delegate method name to the decoder for its payload.
type Event[T any] struct {
	Name string
	// Skip is the number of leading sender arguments (client, conversation)
	// the payload does not include.
	Skip   int
	Decode func(f Frame) (T, error)
}

// Signal is an Event whose payload is empty.
func Signal(name string, skip int) Event[Void] {
	return Event[Void]{Name: name, Skip: skip, Decode: func(Frame) (Void, error) { return Void{}, nil }}
}

// Single is an Event whose payload is one argument of type T.
func Single[T any](name string, skip int) Event[T] {
	return Event[T]{Name: name, Skip: skip, Decode: func(f Frame) (T, error) { return Arg[T](f, 0) }}
}

// SingleEnum is an Event whose payload is one raw-int enum argument.
func SingleEnum[E Enum](name string, skip int) Event[E] {
	return Event[E]{Name: name, Skip: skip, Decode: func(f Frame) (E, error) { return EnumArg[E](f, 0) }}
}

// Stream returns the event stream for ev on d. The stream is hot and
// multicast: subscribers receive callbacks invoked after they subscribe, in
// invocation order. The first call for a name registers it; later calls with
// the same payload type share that stream.
func Stream[T any](d *Dispatcher, ev Event[T]) ro.Observable[T] {
	if d.Released() {
		return ro.Throw[T](ErrReleased)
	}
	if cached, ok := d.lookup(ev.Name); ok {
		if s, ok := cached.(ro.Observable[T]); ok {
			return s
		}
		d.log.Warnw("event re-registered with a different payload type", "event", ev.Name)
		return build(d, ev)
	}
	stored := d.register(ev.Name, build(d, ev))
	if s, ok := stored.(ro.Observable[T]); ok {
		return s
	}
	return build(d, ev)
}

func build[T any](d *Dispatcher, ev Event[T]) ro.Observable[T] {
	frames := ro.Pipe1(
		d.Invocations(),
		ro.Filter(func(inv Invocation) bool { return inv.Event == ev.Name }),
	)
	return ro.NewObservable(func(dst ro.Observer[T]) ro.Teardown {
		var failed atomic.Bool
		sub := frames.Subscribe(ro.NewObserver(
			func(inv Invocation) {
				if failed.Load() {
					return
				}
				v, err := ev.Decode(newFrame(inv, ev.Skip))
				if err != nil {
					failed.Store(true)
					d.log.Warnw("event decode failed, terminating subscriber", "event", ev.Name, "seq", inv.Seq, "error", err)
					dst.Error(err)
					return
				}
				dst.Next(v)
			},
			dst.Error,
			dst.Complete,
		))
		return sub.Unsubscribe
	})
}
