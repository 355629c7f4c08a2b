package conversations

import (
	"github.com/samber/ro"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
	"github.com/xpanvictor/rxconversations/pkg/deferred"
)

// ConversationRx is the reactive view of one Conversation. Its streams only
// carry callbacks delivered to that conversation's own delegate.
type ConversationRx struct {
	conversation Conversation
	d            *bridge.Dispatcher
	log          *Logger.Logger
}

func (c *ConversationRx) Conversation() Conversation     { return c.conversation }
func (c *ConversationRx) Dispatcher() *bridge.Dispatcher { return c.d }

func (c *ConversationRx) Updated() ro.Observable[ConversationUpdate] {
	return bridge.Stream(c.d, conversationUpdated)
}

func (c *ConversationRx) Deleted() ro.Observable[bridge.Void] {
	return bridge.Stream(c.d, conversationDeleted)
}

func (c *ConversationRx) SynchronizationStatusUpdated() ro.Observable[ConversationSynchronizationStatus] {
	return bridge.Stream(c.d, conversationSynchronizationStatusUpdated)
}

func (c *ConversationRx) ParticipantJoined() ro.Observable[Participant] {
	return bridge.Stream(c.d, conversationParticipantJoined)
}

func (c *ConversationRx) ParticipantUpdated() ro.Observable[ParticipantChange] {
	return bridge.Stream(c.d, conversationParticipantUpdated)
}

func (c *ConversationRx) ParticipantLeft() ro.Observable[Participant] {
	return bridge.Stream(c.d, conversationParticipantLeft)
}

func (c *ConversationRx) MessageAdded() ro.Observable[Message] {
	return bridge.Stream(c.d, conversationMessageAdded)
}

func (c *ConversationRx) MessageUpdated() ro.Observable[MessageChange] {
	return bridge.Stream(c.d, conversationMessageUpdated)
}

func (c *ConversationRx) MessageDeleted() ro.Observable[Message] {
	return bridge.Stream(c.d, conversationMessageDeleted)
}

func (c *ConversationRx) TypingStarted() ro.Observable[Participant] {
	return bridge.Stream(c.d, conversationTypingStarted)
}

func (c *ConversationRx) TypingEnded() ro.Observable[Participant] {
	return bridge.Stream(c.d, conversationTypingEnded)
}

func (c *ConversationRx) UserUpdated() ro.Observable[ParticipantUserUpdate] {
	return bridge.Stream(c.d, conversationUserUpdated)
}

func (c *ConversationRx) UserSubscribed() ro.Observable[ParticipantUser] {
	return bridge.Stream(c.d, conversationUserSubscribed)
}

func (c *ConversationRx) UserUnsubscribed() ro.Observable[ParticipantUser] {
	return bridge.Stream(c.d, conversationUserUnsubscribed)
}

// completion-only operations

func (c *ConversationRx) SetAttributes(attrs JSONAttributes) ro.Observable[deferred.Void] {
	return c.complete("conversation.setAttributes", func(done func(Result)) {
		c.conversation.SetAttributes(attrs, done)
	})
}

func (c *ConversationRx) SetFriendlyName(name string) ro.Observable[deferred.Void] {
	return c.complete("conversation.setFriendlyName", func(done func(Result)) {
		c.conversation.SetFriendlyName(name, done)
	})
}

func (c *ConversationRx) SetUniqueName(name string) ro.Observable[deferred.Void] {
	return c.complete("conversation.setUniqueName", func(done func(Result)) {
		c.conversation.SetUniqueName(name, done)
	})
}

func (c *ConversationRx) SetNotificationLevel(level NotificationLevel) ro.Observable[deferred.Void] {
	return c.complete("conversation.setNotificationLevel", func(done func(Result)) {
		c.conversation.SetNotificationLevel(level, done)
	})
}

func (c *ConversationRx) Join() ro.Observable[deferred.Void] {
	return c.complete("conversation.join", c.conversation.Join)
}

func (c *ConversationRx) Leave() ro.Observable[deferred.Void] {
	return c.complete("conversation.leave", c.conversation.Leave)
}

func (c *ConversationRx) Destroy() ro.Observable[deferred.Void] {
	return c.complete("conversation.destroy", c.conversation.Destroy)
}

func (c *ConversationRx) RemoveMessage(m Message) ro.Observable[deferred.Void] {
	return c.complete("conversation.removeMessage", func(done func(Result)) {
		c.conversation.RemoveMessage(m, done)
	})
}

func (c *ConversationRx) AddParticipantByIdentity(identity string, attrs JSONAttributes) ro.Observable[deferred.Void] {
	return c.complete("conversation.addParticipantByIdentity", func(done func(Result)) {
		c.conversation.AddParticipantByIdentity(identity, attrs, done)
	})
}

func (c *ConversationRx) AddParticipantByAddress(address, proxyAddress string, attrs JSONAttributes) ro.Observable[deferred.Void] {
	return c.complete("conversation.addParticipantByAddress", func(done func(Result)) {
		c.conversation.AddParticipantByAddress(address, proxyAddress, attrs, done)
	})
}

func (c *ConversationRx) RemoveParticipant(p Participant) ro.Observable[deferred.Void] {
	return c.complete("conversation.removeParticipant", func(done func(Result)) {
		c.conversation.RemoveParticipant(p, done)
	})
}

func (c *ConversationRx) RemoveParticipantByIdentity(identity string) ro.Observable[deferred.Void] {
	return c.complete("conversation.removeParticipantByIdentity", func(done func(Result)) {
		c.conversation.RemoveParticipantByIdentity(identity, done)
	})
}

// messages

func (c *ConversationRx) LastMessages(count uint) ro.Observable[[]Message] {
	return c.messages("conversation.lastMessages", func(done func(Result, []Message)) {
		c.conversation.LastMessages(count, done)
	})
}

func (c *ConversationRx) MessagesBefore(index, count uint) ro.Observable[[]Message] {
	return c.messages("conversation.messagesBefore", func(done func(Result, []Message)) {
		c.conversation.MessagesBefore(index, count, done)
	})
}

func (c *ConversationRx) MessagesAfter(index, count uint) ro.Observable[[]Message] {
	return c.messages("conversation.messagesAfter", func(done func(Result, []Message)) {
		c.conversation.MessagesAfter(index, count, done)
	})
}

func (c *ConversationRx) MessageWithIndex(index uint) ro.Observable[Message] {
	return c.message("conversation.messageWithIndex", func(done func(Result, Message)) {
		c.conversation.MessageWithIndex(index, done)
	})
}

func (c *ConversationRx) MessageForReadIndex(index uint) ro.Observable[Message] {
	return c.message("conversation.messageForReadIndex", func(done func(Result, Message)) {
		c.conversation.MessageForReadIndex(index, done)
	})
}

// read horizon and counters

func (c *ConversationRx) SetLastReadMessageIndex(index uint) ro.Observable[uint] {
	return c.count("conversation.setLastReadMessageIndex", func(done func(Result, uint)) {
		c.conversation.SetLastReadMessageIndex(index, done)
	})
}

func (c *ConversationRx) AdvanceLastReadMessageIndex(index uint) ro.Observable[uint] {
	return c.count("conversation.advanceLastReadMessageIndex", func(done func(Result, uint)) {
		c.conversation.AdvanceLastReadMessageIndex(index, done)
	})
}

func (c *ConversationRx) SetAllMessagesRead() ro.Observable[uint] {
	return c.count("conversation.setAllMessagesRead", c.conversation.SetAllMessagesRead)
}

// SetAllMessagesUnread fails with deferred.ErrUnknown when the SDK reports
// success without an unread count.
func (c *ConversationRx) SetAllMessagesUnread() ro.Observable[uint] {
	return c.optional("conversation.setAllMessagesUnread", c.conversation.SetAllMessagesUnread)
}

// UnreadMessagesCount has no count until the user has a read horizon on
// the conversation; that case fails with deferred.ErrUnknown.
func (c *ConversationRx) UnreadMessagesCount() ro.Observable[uint] {
	return c.optional("conversation.unreadMessagesCount", c.conversation.UnreadMessagesCount)
}

func (c *ConversationRx) MessagesCount() ro.Observable[uint] {
	return c.count("conversation.messagesCount", c.conversation.MessagesCount)
}

func (c *ConversationRx) ParticipantsCount() ro.Observable[uint] {
	return c.count("conversation.participantsCount", c.conversation.ParticipantsCount)
}

func (c *ConversationRx) complete(op string, start func(done func(Result))) ro.Observable[deferred.Void] {
	return deferred.Completion(op, func(settle func(deferred.Reply[deferred.Void])) deferred.Canceller {
		start(completion(settle))
		return nil
	}, deferred.WithLogger(c.log))
}

func (c *ConversationRx) messages(op string, start func(done func(Result, []Message))) ro.Observable[[]Message] {
	return deferred.Value(op, func(settle func(deferred.Reply[[]Message])) deferred.Canceller {
		start(reply(settle, sliceSet[Message]))
		return nil
	}, deferred.WithLogger(c.log))
}

func (c *ConversationRx) message(op string, start func(done func(Result, Message))) ro.Observable[Message] {
	return deferred.Value(op, func(settle func(deferred.Reply[Message])) deferred.Canceller {
		start(reply(settle, notNil[Message]))
		return nil
	}, deferred.WithLogger(c.log))
}

func (c *ConversationRx) count(op string, start func(done func(Result, uint))) ro.Observable[uint] {
	return deferred.Value(op, func(settle func(deferred.Reply[uint])) deferred.Canceller {
		start(reply(settle, always[uint]))
		return nil
	}, deferred.WithLogger(c.log))
}

func (c *ConversationRx) optional(op string, start func(done func(Result, *uint))) ro.Observable[uint] {
	return deferred.Value(op, func(settle func(deferred.Reply[uint])) deferred.Canceller {
		start(optionalCount(settle))
		return nil
	}, deferred.WithLogger(c.log))
}
