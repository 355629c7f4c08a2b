package fake

import (
	"net/url"
	"sync"

	"github.com/xpanvictor/rxconversations/pkg/conversations"
)

// Client records every SDK call. Callbacks are delivered by calling the
// installed Delegate directly.
type Client struct {
	recorder

	dmu      sync.RWMutex
	delegate conversations.ClientDelegate
}

var _ conversations.Client = (*Client)(nil)

func NewClient(delegate conversations.ClientDelegate) *Client {
	return &Client{delegate: delegate}
}

func (c *Client) Delegate() conversations.ClientDelegate {
	c.dmu.RLock()
	defer c.dmu.RUnlock()
	return c.delegate
}

func (c *Client) SetDelegate(d conversations.ClientDelegate) {
	c.dmu.Lock()
	c.delegate = d
	c.dmu.Unlock()
}

func (c *Client) UpdateToken(token string, done func(conversations.Result)) {
	c.record("updateToken", done, token)
}

func (c *Client) CreateConversation(opts *conversations.ConversationOptions, done func(conversations.Result, conversations.Conversation)) {
	c.record("createConversation", done, opts)
}

func (c *Client) Conversation(sidOrUniqueName string, done func(conversations.Result, conversations.Conversation)) {
	c.record("conversation", done, sidOrUniqueName)
}

func (c *Client) SubscribedUser(identity string, done func(conversations.Result, conversations.User)) {
	c.record("subscribedUser", done, identity)
}

func (c *Client) Register(notificationToken []byte, done func(conversations.Result)) {
	c.record("register", done, notificationToken)
}

func (c *Client) Deregister(notificationToken []byte, done func(conversations.Result)) {
	c.record("deregister", done, notificationToken)
}

func (c *Client) HandleNotification(notification map[string]any, done func(conversations.Result)) {
	c.record("handleNotification", done, notification)
}

func (c *Client) TemporaryContentURLsForMedia(media []conversations.Media, done func(conversations.Result, map[string]*url.URL)) conversations.CancellationToken {
	return c.record("temporaryContentURLs", done, media).Token
}

func (c *Client) TemporaryContentURLsForMediaSIDs(sids []string, done func(conversations.Result, map[string]*url.URL)) conversations.CancellationToken {
	return c.record("temporaryContentURLsForSIDs", done, sids).Token
}

// Connector hands out Client on every Connect, installing the delegate it
// was given the way the SDK does.
type Connector struct {
	recorder
	Client *Client
}

var _ conversations.Connector = (*Connector)(nil)

func (c *Connector) Connect(token string, props *conversations.ClientProperties, delegate conversations.ClientDelegate, done func(conversations.Result, conversations.Client)) {
	if c.Client != nil {
		c.Client.SetDelegate(delegate)
	}
	c.record("connect", done, token, props, delegate)
}
