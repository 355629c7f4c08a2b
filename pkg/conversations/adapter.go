// Package conversations exposes the conversations SDK through reactive
// types. Delegate callbacks become hot event streams on ClientRx and
// ConversationRx; completion-handler methods become cold deferreds that run
// the SDK call once per subscription.
package conversations

import (
	"github.com/samber/ro"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
	"github.com/xpanvictor/rxconversations/pkg/deferred"
)

type Adapter struct {
	opts          bridge.Options
	log           *Logger.Logger
	clients       *bridge.Registry[Client]
	conversations *bridge.Registry[Conversation]
}

func New(opts bridge.Options, log *Logger.Logger) *Adapter {
	log = Logger.OrNop(log).Named("conversations")
	return &Adapter{
		opts:          opts,
		log:           log,
		clients:       bridge.NewRegistry[Client](opts, log),
		conversations: bridge.NewRegistry[Conversation](opts, log),
	}
}

// Client installs the delegate proxy on c the first time it is seen and
// returns its reactive view. Later calls share the same dispatcher.
func (a *Adapter) Client(c Client) *ClientRx {
	d := a.clients.Attach(c, func(d *bridge.Dispatcher) func() {
		proxy := &clientProxy{d: d, next: c.Delegate(), forward: a.opts.ForwardToDelegate}
		c.SetDelegate(proxy)
		return func() {
			// someone else may have replaced the proxy since
			if cur, ok := c.Delegate().(*clientProxy); ok && cur == proxy {
				c.SetDelegate(proxy.next)
			}
		}
	})
	return &ClientRx{client: c, d: d, log: a.log}
}

func (a *Adapter) Conversation(c Conversation) *ConversationRx {
	d := a.conversations.Attach(c, func(d *bridge.Dispatcher) func() {
		proxy := &conversationProxy{d: d, next: c.Delegate(), forward: a.opts.ForwardToDelegate}
		c.SetDelegate(proxy)
		return func() {
			if cur, ok := c.Delegate().(*conversationProxy); ok && cur == proxy {
				c.SetDelegate(proxy.next)
			}
		}
	})
	return &ConversationRx{conversation: c, d: d, log: a.log}
}

// Release restores c's previous delegate and completes its streams.
func (a *Adapter) Release(c Client) bool {
	return a.clients.Release(c)
}

func (a *Adapter) ReleaseConversation(c Conversation) bool {
	return a.conversations.Release(c)
}

// Close releases every client and conversation the adapter attached to.
func (a *Adapter) Close() {
	a.conversations.ReleaseAll()
	a.clients.ReleaseAll()
}

// Connect creates a client. The SDK is called once per subscription; delegate
// is installed by the SDK itself and may be wrapped later through Client.
func (a *Adapter) Connect(conn Connector, token string, props *ClientProperties, delegate ClientDelegate) ro.Observable[Client] {
	return deferred.Value("client.connect", func(settle func(deferred.Reply[Client])) deferred.Canceller {
		conn.Connect(token, props, delegate, reply(settle, notNil[Client]))
		return nil
	}, deferred.WithLogger(a.log))
}
