package conversations_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/samber/ro"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
	"github.com/xpanvictor/rxconversations/pkg/conversations"
	"github.com/xpanvictor/rxconversations/pkg/deferred"
)

func newAdapter(t *testing.T) *conversations.Adapter {
	t.Helper()
	a := conversations.New(bridge.DefaultOptions(), Logger.NewNop())
	t.Cleanup(a.Close)
	return a
}

func await[T any](t *testing.T, obs ro.Observable[T]) (T, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return deferred.Await(ctx, obs)
}

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

// spyClient is a pre-existing application delegate. Only the callbacks the
// tests fire are implemented.
type spyClient struct {
	conversations.ClientDelegate

	mu    sync.Mutex
	added []conversations.Conversation
}

func (s *spyClient) ConversationAdded(_ conversations.Client, c conversations.Conversation) {
	s.mu.Lock()
	s.added = append(s.added, c)
	s.mu.Unlock()
}

func (s *spyClient) Added() []conversations.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]conversations.Conversation(nil), s.added...)
}

type spyConversation struct {
	conversations.ConversationDelegate

	mu       sync.Mutex
	messages []conversations.Message
	deleted  int
}

func (s *spyConversation) ConversationDeleted(conversations.Client, conversations.Conversation) {
	s.mu.Lock()
	s.deleted++
	s.mu.Unlock()
}

func (s *spyConversation) Deleted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleted
}

func (s *spyConversation) MessageAdded(_ conversations.Client, _ conversations.Conversation, m conversations.Message) {
	s.mu.Lock()
	s.messages = append(s.messages, m)
	s.mu.Unlock()
}

func (s *spyConversation) Messages() []conversations.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]conversations.Message(nil), s.messages...)
}
