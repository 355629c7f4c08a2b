package conversations

import (
	"net/url"

	"github.com/samber/ro"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
	"github.com/xpanvictor/rxconversations/pkg/deferred"
)

// ClientRx is the reactive view of one Client. Obtain it with Adapter.Client.
type ClientRx struct {
	client Client
	d      *bridge.Dispatcher
	log    *Logger.Logger
}

func (c *ClientRx) Client() Client                 { return c.client }
func (c *ClientRx) Dispatcher() *bridge.Dispatcher { return c.d }

// Events

func (c *ClientRx) ConnectionStateUpdated() ro.Observable[ConnectionState] {
	return bridge.Stream(c.d, clientConnectionStateUpdated)
}

func (c *ClientRx) TokenExpired() ro.Observable[bridge.Void] {
	return bridge.Stream(c.d, clientTokenExpired)
}

func (c *ClientRx) TokenWillExpire() ro.Observable[bridge.Void] {
	return bridge.Stream(c.d, clientTokenWillExpire)
}

func (c *ClientRx) SynchronizationStatusUpdated() ro.Observable[ClientSynchronizationStatus] {
	return bridge.Stream(c.d, clientSynchronizationStatusUpdated)
}

func (c *ClientRx) ConversationAdded() ro.Observable[Conversation] {
	return bridge.Stream(c.d, clientConversationAdded)
}

func (c *ClientRx) ConversationUpdated() ro.Observable[ConversationUpdatedEvent] {
	return bridge.Stream(c.d, clientConversationUpdated)
}

func (c *ClientRx) ConversationSynchronizationStatusUpdated() ro.Observable[ConversationStatusEvent] {
	return bridge.Stream(c.d, clientConversationSynchronizationStatusUpdated)
}

func (c *ClientRx) ConversationDeleted() ro.Observable[Conversation] {
	return bridge.Stream(c.d, clientConversationDeleted)
}

func (c *ClientRx) ParticipantJoined() ro.Observable[ParticipantEvent] {
	return bridge.Stream(c.d, clientParticipantJoined)
}

func (c *ClientRx) ParticipantUpdated() ro.Observable[ParticipantUpdatedEvent] {
	return bridge.Stream(c.d, clientParticipantUpdated)
}

func (c *ClientRx) ParticipantLeft() ro.Observable[ParticipantEvent] {
	return bridge.Stream(c.d, clientParticipantLeft)
}

func (c *ClientRx) MessageAdded() ro.Observable[MessageEvent] {
	return bridge.Stream(c.d, clientMessageAdded)
}

func (c *ClientRx) MessageUpdated() ro.Observable[MessageUpdatedEvent] {
	return bridge.Stream(c.d, clientMessageUpdated)
}

func (c *ClientRx) MessageDeleted() ro.Observable[MessageEvent] {
	return bridge.Stream(c.d, clientMessageDeleted)
}

func (c *ClientRx) ErrorReceived() ro.Observable[*Error] {
	return bridge.Stream(c.d, clientErrorReceived)
}

func (c *ClientRx) TypingStarted() ro.Observable[ParticipantEvent] {
	return bridge.Stream(c.d, clientTypingStarted)
}

func (c *ClientRx) TypingEnded() ro.Observable[ParticipantEvent] {
	return bridge.Stream(c.d, clientTypingEnded)
}

func (c *ClientRx) NewMessageNotification() ro.Observable[NewMessageNotification] {
	return bridge.Stream(c.d, clientNewMessageNotification)
}

func (c *ClientRx) AddedToConversationNotification() ro.Observable[string] {
	return bridge.Stream(c.d, clientAddedToConversation)
}

func (c *ClientRx) RemovedFromConversationNotification() ro.Observable[string] {
	return bridge.Stream(c.d, clientRemovedFromConversation)
}

func (c *ClientRx) BadgeCountUpdated() ro.Observable[uint] {
	return bridge.Stream(c.d, clientBadgeCountUpdated)
}

func (c *ClientRx) UserUpdated() ro.Observable[UserUpdatedEvent] {
	return bridge.Stream(c.d, clientUserUpdated)
}

func (c *ClientRx) UserSubscribed() ro.Observable[User] {
	return bridge.Stream(c.d, clientUserSubscribed)
}

func (c *ClientRx) UserUnsubscribed() ro.Observable[User] {
	return bridge.Stream(c.d, clientUserUnsubscribed)
}

// Operations

func (c *ClientRx) UpdateToken(token string) ro.Observable[deferred.Void] {
	return deferred.Completion("client.updateToken", func(settle func(deferred.Reply[deferred.Void])) deferred.Canceller {
		c.client.UpdateToken(token, completion(settle))
		return nil
	}, c.opts()...)
}

func (c *ClientRx) CreateConversation(opts *ConversationOptions) ro.Observable[Conversation] {
	return deferred.Value("client.createConversation", func(settle func(deferred.Reply[Conversation])) deferred.Canceller {
		c.client.CreateConversation(opts, reply(settle, notNil[Conversation]))
		return nil
	}, c.opts()...)
}

func (c *ClientRx) ConversationWithSIDOrUniqueName(sidOrUniqueName string) ro.Observable[Conversation] {
	return deferred.Value("client.conversation", func(settle func(deferred.Reply[Conversation])) deferred.Canceller {
		c.client.Conversation(sidOrUniqueName, reply(settle, notNil[Conversation]))
		return nil
	}, c.opts()...)
}

func (c *ClientRx) SubscribedUser(identity string) ro.Observable[User] {
	return deferred.Value("client.subscribedUser", func(settle func(deferred.Reply[User])) deferred.Canceller {
		c.client.SubscribedUser(identity, reply(settle, notNil[User]))
		return nil
	}, c.opts()...)
}

func (c *ClientRx) Register(notificationToken []byte) ro.Observable[deferred.Void] {
	return deferred.Completion("client.register", func(settle func(deferred.Reply[deferred.Void])) deferred.Canceller {
		c.client.Register(notificationToken, completion(settle))
		return nil
	}, c.opts()...)
}

func (c *ClientRx) Deregister(notificationToken []byte) ro.Observable[deferred.Void] {
	return deferred.Completion("client.deregister", func(settle func(deferred.Reply[deferred.Void])) deferred.Canceller {
		c.client.Deregister(notificationToken, completion(settle))
		return nil
	}, c.opts()...)
}

func (c *ClientRx) HandleNotification(notification map[string]any) ro.Observable[deferred.Void] {
	return deferred.Completion("client.handleNotification", func(settle func(deferred.Reply[deferred.Void])) deferred.Canceller {
		c.client.HandleNotification(notification, completion(settle))
		return nil
	}, c.opts()...)
}

// TemporaryContentURLs resolves download URLs keyed by media SID.
// Unsubscribing before the SDK answers cancels the request.
func (c *ClientRx) TemporaryContentURLs(media []Media) ro.Observable[map[string]*url.URL] {
	return deferred.Value("client.temporaryContentURLs", func(settle func(deferred.Reply[map[string]*url.URL])) deferred.Canceller {
		return canceller(c.client.TemporaryContentURLsForMedia(media, reply(settle, mapSet[string, *url.URL])))
	}, c.opts()...)
}

func (c *ClientRx) TemporaryContentURLsForSIDs(sids []string) ro.Observable[map[string]*url.URL] {
	return deferred.Value("client.temporaryContentURLsForSIDs", func(settle func(deferred.Reply[map[string]*url.URL])) deferred.Canceller {
		return canceller(c.client.TemporaryContentURLsForMediaSIDs(sids, reply(settle, mapSet[string, *url.URL])))
	}, c.opts()...)
}

func (c *ClientRx) opts() []deferred.Option {
	return []deferred.Option{deferred.WithLogger(c.log)}
}
