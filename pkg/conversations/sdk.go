package conversations

import (
	"fmt"
	"net/url"
	"time"
)

// The interfaces in this file describe the conversations SDK surface the
// adapter consumes. The SDK owns connection management, synchronization and
// storage; the adapter only calls these methods and receives their callbacks.

// Result is the status every SDK completion callback reports.
type Result struct {
	Successful bool
	Err        error
}

// Error is the SDK's error payload, also delivered through ErrorReceived.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("conversations: error %d: %s", e.Code, e.Message)
}

// JSONAttributes holds developer-defined attributes. Values must be JSON
// compatible: string, number, bool, nil, []any or map[string]any.
type JSONAttributes map[string]any

type CancellationToken interface {
	Cancel()
}

type Participant interface {
	SID() string
	Identity() string
}

type Message interface {
	SID() string
	Index() uint
	Author() string
	Body() string
}

type User interface {
	Identity() string
	FriendlyName() string
}

type Media interface {
	SID() string
	ContentType() string
	Filename() string
	Size() int64
}

type ClientProperties struct {
	Region         string
	CommandTimeout time.Duration
}

type ConversationOptions struct {
	FriendlyName string
	UniqueName   string
	Attributes   JSONAttributes
}

// Connector creates clients; it is the SDK's static entry point.
type Connector interface {
	Connect(token string, props *ClientProperties, delegate ClientDelegate, done func(Result, Client))
}

type Client interface {
	Delegate() ClientDelegate
	SetDelegate(d ClientDelegate)

	UpdateToken(token string, done func(Result))
	CreateConversation(opts *ConversationOptions, done func(Result, Conversation))
	Conversation(sidOrUniqueName string, done func(Result, Conversation))
	SubscribedUser(identity string, done func(Result, User))
	Register(notificationToken []byte, done func(Result))
	Deregister(notificationToken []byte, done func(Result))
	HandleNotification(notification map[string]any, done func(Result))
	TemporaryContentURLsForMedia(media []Media, done func(Result, map[string]*url.URL)) CancellationToken
	TemporaryContentURLsForMediaSIDs(sids []string, done func(Result, map[string]*url.URL)) CancellationToken
}

type Conversation interface {
	SID() string
	UniqueName() string
	FriendlyName() string
	Delegate() ConversationDelegate
	SetDelegate(d ConversationDelegate)

	SetAttributes(attrs JSONAttributes, done func(Result))
	SetFriendlyName(name string, done func(Result))
	SetUniqueName(name string, done func(Result))
	SetNotificationLevel(level NotificationLevel, done func(Result))
	Join(done func(Result))
	Leave(done func(Result))
	Destroy(done func(Result))
	RemoveMessage(m Message, done func(Result))

	LastMessages(count uint, done func(Result, []Message))
	MessagesBefore(index, count uint, done func(Result, []Message))
	MessagesAfter(index, count uint, done func(Result, []Message))
	MessageWithIndex(index uint, done func(Result, Message))
	MessageForReadIndex(index uint, done func(Result, Message))

	SetLastReadMessageIndex(index uint, done func(Result, uint))
	AdvanceLastReadMessageIndex(index uint, done func(Result, uint))
	SetAllMessagesRead(done func(Result, uint))
	SetAllMessagesUnread(done func(Result, *uint))
	UnreadMessagesCount(done func(Result, *uint))
	MessagesCount(done func(Result, uint))
	ParticipantsCount(done func(Result, uint))

	AddParticipantByIdentity(identity string, attrs JSONAttributes, done func(Result))
	AddParticipantByAddress(address, proxyAddress string, attrs JSONAttributes, done func(Result))
	RemoveParticipant(p Participant, done func(Result))
	RemoveParticipantByIdentity(identity string, done func(Result))
}

// ClientDelegate receives client-wide callbacks. Enum arguments arrive as
// raw ints.
type ClientDelegate interface {
	ConnectionStateUpdated(client Client, state int)
	TokenExpired(client Client)
	TokenWillExpire(client Client)
	SynchronizationStatusUpdated(client Client, status int)
	ConversationAdded(client Client, conversation Conversation)
	ConversationUpdated(client Client, conversation Conversation, update int)
	ConversationSynchronizationStatusUpdated(client Client, conversation Conversation, status int)
	ConversationDeleted(client Client, conversation Conversation)
	ParticipantJoined(client Client, conversation Conversation, participant Participant)
	ParticipantUpdated(client Client, conversation Conversation, participant Participant, update int)
	ParticipantLeft(client Client, conversation Conversation, participant Participant)
	MessageAdded(client Client, conversation Conversation, message Message)
	MessageUpdated(client Client, conversation Conversation, message Message, update int)
	MessageDeleted(client Client, conversation Conversation, message Message)
	ErrorReceived(client Client, err *Error)
	TypingStarted(client Client, conversation Conversation, participant Participant)
	TypingEnded(client Client, conversation Conversation, participant Participant)
	NewMessageNotification(client Client, conversationSID string, messageIndex uint)
	AddedToConversationNotification(client Client, conversationSID string)
	RemovedFromConversationNotification(client Client, conversationSID string)
	NotificationBadgeCountUpdated(client Client, badgeCount uint)
	UserUpdated(client Client, user User, update int)
	UserSubscribed(client Client, user User)
	UserUnsubscribed(client Client, user User)
}

// ConversationDelegate receives callbacks scoped to one conversation.
type ConversationDelegate interface {
	ConversationUpdated(client Client, conversation Conversation, update int)
	ConversationDeleted(client Client, conversation Conversation)
	SynchronizationStatusUpdated(client Client, conversation Conversation, status int)
	ParticipantJoined(client Client, conversation Conversation, participant Participant)
	ParticipantUpdated(client Client, conversation Conversation, participant Participant, update int)
	ParticipantLeft(client Client, conversation Conversation, participant Participant)
	MessageAdded(client Client, conversation Conversation, message Message)
	MessageUpdated(client Client, conversation Conversation, message Message, update int)
	MessageDeleted(client Client, conversation Conversation, message Message)
	TypingStarted(client Client, conversation Conversation, participant Participant)
	TypingEnded(client Client, conversation Conversation, participant Participant)
	UserUpdated(client Client, conversation Conversation, participant Participant, user User, update int)
	UserSubscribed(client Client, conversation Conversation, participant Participant, user User)
	UserUnsubscribed(client Client, conversation Conversation, participant Participant, user User)
}
