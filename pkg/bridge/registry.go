package bridge

import (
	"sync"

	"github.com/xpanvictor/rxconversations/pkg/Logger"
)

// Installer attaches a proxy for a freshly created dispatcher to the SDK
// session and returns the hook that undoes it.
type Installer func(d *Dispatcher) (detach func())

// Registry maps a session's identity to its one Dispatcher. Session keys must
// have comparable dynamic values; SDK objects are pointers in practice.
type Registry[K comparable] struct {
	mu      sync.RWMutex
	opts    Options
	log     *Logger.Logger
	entries map[K]*Dispatcher
}

func NewRegistry[K comparable](opts Options, log *Logger.Logger) *Registry[K] {
	return &Registry[K]{
		opts:    opts,
		log:     Logger.OrNop(log),
		entries: make(map[K]*Dispatcher),
	}
}

// Attach returns session's dispatcher. The first call creates it and runs
// install exactly once; later calls reuse it and ignore install.
func (r *Registry[K]) Attach(session K, install Installer) *Dispatcher {
	r.mu.RLock()
	d, ok := r.entries[session]
	r.mu.RUnlock()
	if ok {
		return d
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.entries[session]; ok {
		return d
	}
	d = NewDispatcher(r.opts, r.log)
	if install != nil {
		d.detach = install(d)
	}
	r.entries[session] = d
	d.log.Infow("dispatcher attached")
	return d
}

func (r *Registry[K]) Lookup(session K) (*Dispatcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[session]
	return d, ok
}

// Release detaches and completes session's dispatcher. It reports false when
// the session was never attached. A later Attach creates a new dispatcher.
func (r *Registry[K]) Release(session K) bool {
	r.mu.Lock()
	d, ok := r.entries[session]
	delete(r.entries, session)
	r.mu.Unlock()
	if !ok {
		return false
	}
	d.Release()
	return true
}

// ReleaseAll tears down every session, e.g. on shutdown.
func (r *Registry[K]) ReleaseAll() {
	r.mu.Lock()
	all := r.entries
	r.entries = make(map[K]*Dispatcher)
	r.mu.Unlock()
	for _, d := range all {
		d.Release()
	}
}

func (r *Registry[K]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
