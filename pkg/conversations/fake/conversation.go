package fake

import (
	"sync"

	"github.com/xpanvictor/rxconversations/pkg/conversations"
)

type Conversation struct {
	recorder

	sid          string
	uniqueName   string
	friendlyName string

	dmu      sync.RWMutex
	delegate conversations.ConversationDelegate
}

var _ conversations.Conversation = (*Conversation)(nil)

func NewConversation(sid, uniqueName, friendlyName string) *Conversation {
	return &Conversation{sid: sid, uniqueName: uniqueName, friendlyName: friendlyName}
}

func (c *Conversation) SID() string          { return c.sid }
func (c *Conversation) UniqueName() string   { return c.uniqueName }
func (c *Conversation) FriendlyName() string { return c.friendlyName }

func (c *Conversation) Delegate() conversations.ConversationDelegate {
	c.dmu.RLock()
	defer c.dmu.RUnlock()
	return c.delegate
}

func (c *Conversation) SetDelegate(d conversations.ConversationDelegate) {
	c.dmu.Lock()
	c.delegate = d
	c.dmu.Unlock()
}

func (c *Conversation) SetAttributes(attrs conversations.JSONAttributes, done func(conversations.Result)) {
	c.record("setAttributes", done, attrs)
}

func (c *Conversation) SetFriendlyName(name string, done func(conversations.Result)) {
	c.record("setFriendlyName", done, name)
}

func (c *Conversation) SetUniqueName(name string, done func(conversations.Result)) {
	c.record("setUniqueName", done, name)
}

func (c *Conversation) SetNotificationLevel(level conversations.NotificationLevel, done func(conversations.Result)) {
	c.record("setNotificationLevel", done, level)
}

func (c *Conversation) Join(done func(conversations.Result))    { c.record("join", done) }
func (c *Conversation) Leave(done func(conversations.Result))   { c.record("leave", done) }
func (c *Conversation) Destroy(done func(conversations.Result)) { c.record("destroy", done) }

func (c *Conversation) RemoveMessage(m conversations.Message, done func(conversations.Result)) {
	c.record("removeMessage", done, m)
}

func (c *Conversation) LastMessages(count uint, done func(conversations.Result, []conversations.Message)) {
	c.record("lastMessages", done, count)
}

func (c *Conversation) MessagesBefore(index, count uint, done func(conversations.Result, []conversations.Message)) {
	c.record("messagesBefore", done, index, count)
}

func (c *Conversation) MessagesAfter(index, count uint, done func(conversations.Result, []conversations.Message)) {
	c.record("messagesAfter", done, index, count)
}

func (c *Conversation) MessageWithIndex(index uint, done func(conversations.Result, conversations.Message)) {
	c.record("messageWithIndex", done, index)
}

func (c *Conversation) MessageForReadIndex(index uint, done func(conversations.Result, conversations.Message)) {
	c.record("messageForReadIndex", done, index)
}

func (c *Conversation) SetLastReadMessageIndex(index uint, done func(conversations.Result, uint)) {
	c.record("setLastReadMessageIndex", done, index)
}

func (c *Conversation) AdvanceLastReadMessageIndex(index uint, done func(conversations.Result, uint)) {
	c.record("advanceLastReadMessageIndex", done, index)
}

func (c *Conversation) SetAllMessagesRead(done func(conversations.Result, uint)) {
	c.record("setAllMessagesRead", done)
}

func (c *Conversation) SetAllMessagesUnread(done func(conversations.Result, *uint)) {
	c.record("setAllMessagesUnread", done)
}

func (c *Conversation) UnreadMessagesCount(done func(conversations.Result, *uint)) {
	c.record("unreadMessagesCount", done)
}

func (c *Conversation) MessagesCount(done func(conversations.Result, uint)) {
	c.record("messagesCount", done)
}

func (c *Conversation) ParticipantsCount(done func(conversations.Result, uint)) {
	c.record("participantsCount", done)
}

func (c *Conversation) AddParticipantByIdentity(identity string, attrs conversations.JSONAttributes, done func(conversations.Result)) {
	c.record("addParticipantByIdentity", done, identity, attrs)
}

func (c *Conversation) AddParticipantByAddress(address, proxyAddress string, attrs conversations.JSONAttributes, done func(conversations.Result)) {
	c.record("addParticipantByAddress", done, address, proxyAddress, attrs)
}

func (c *Conversation) RemoveParticipant(p conversations.Participant, done func(conversations.Result)) {
	c.record("removeParticipant", done, p)
}

func (c *Conversation) RemoveParticipantByIdentity(identity string, done func(conversations.Result)) {
	c.record("removeParticipantByIdentity", done, identity)
}
