package conversations

import "fmt"

type ConnectionState int

const (
	ConnectionUnknown ConnectionState = iota
	ConnectionDisconnected
	ConnectionConnected
	ConnectionConnecting
	ConnectionDenied
	ConnectionError
	ConnectionFatalError
)

var connectionStateNames = []string{"unknown", "disconnected", "connected", "connecting", "denied", "error", "fatal_error"}

func (s ConnectionState) Valid() bool {
	return inRange(int(s), connectionStateNames)
}

func (s ConnectionState) String() string {
	return enumString("ConnectionState", int(s), connectionStateNames)
}

type ClientSynchronizationStatus int

const (
	ClientSyncStarted ClientSynchronizationStatus = iota
	ClientSyncConversationsListCompleted
	ClientSyncCompleted
	ClientSyncFailed
)

var clientSyncNames = []string{"started", "conversations_list_completed", "completed", "failed"}

func (s ClientSynchronizationStatus) Valid() bool {
	return inRange(int(s), clientSyncNames)
}

func (s ClientSynchronizationStatus) String() string {
	return enumString("ClientSynchronizationStatus", int(s), clientSyncNames)
}

type ConversationUpdate int

const (
	ConversationUpdateStatus ConversationUpdate = iota
	ConversationUpdateLastReadMessageIndex
	ConversationUpdateUniqueName
	ConversationUpdateFriendlyName
	ConversationUpdateAttributes
	ConversationUpdateLastMessage
	ConversationUpdateUserNotificationLevel
	ConversationUpdateState
)

var conversationUpdateNames = []string{
	"status", "last_read_message_index", "unique_name", "friendly_name",
	"attributes", "last_message", "user_notification_level", "state",
}

func (u ConversationUpdate) Valid() bool {
	return inRange(int(u), conversationUpdateNames)
}

func (u ConversationUpdate) String() string {
	return enumString("ConversationUpdate", int(u), conversationUpdateNames)
}

type ConversationSynchronizationStatus int

const (
	ConversationSyncNone ConversationSynchronizationStatus = iota
	ConversationSyncIdentifier
	ConversationSyncMetadata
	ConversationSyncAll
	ConversationSyncFailed
)

var conversationSyncNames = []string{"none", "identifier", "metadata", "all", "failed"}

func (s ConversationSynchronizationStatus) Valid() bool {
	return inRange(int(s), conversationSyncNames)
}

func (s ConversationSynchronizationStatus) String() string {
	return enumString("ConversationSynchronizationStatus", int(s), conversationSyncNames)
}

type ParticipantUpdate int

const (
	ParticipantUpdateLastReadMessageIndex ParticipantUpdate = iota
	ParticipantUpdateLastReadTimestamp
	ParticipantUpdateAttributes
)

var participantUpdateNames = []string{"last_read_message_index", "last_read_timestamp", "attributes"}

func (u ParticipantUpdate) Valid() bool {
	return inRange(int(u), participantUpdateNames)
}

func (u ParticipantUpdate) String() string {
	return enumString("ParticipantUpdate", int(u), participantUpdateNames)
}

type MessageUpdate int

const (
	MessageUpdateBody MessageUpdate = iota
	MessageUpdateAttributes
	MessageUpdateDeliveryReceipt
	MessageUpdateSubject
)

var messageUpdateNames = []string{"body", "attributes", "delivery_receipt", "subject"}

func (u MessageUpdate) Valid() bool {
	return inRange(int(u), messageUpdateNames)
}

func (u MessageUpdate) String() string {
	return enumString("MessageUpdate", int(u), messageUpdateNames)
}

type UserUpdate int

const (
	UserUpdateFriendlyName UserUpdate = iota
	UserUpdateAttributes
	UserUpdateReachabilityOnline
	UserUpdateReachabilityNotifiable
)

var userUpdateNames = []string{"friendly_name", "attributes", "reachability_online", "reachability_notifiable"}

func (u UserUpdate) Valid() bool {
	return inRange(int(u), userUpdateNames)
}

func (u UserUpdate) String() string {
	return enumString("UserUpdate", int(u), userUpdateNames)
}

// NotificationLevel is only ever sent to the SDK, never decoded.
type NotificationLevel int

const (
	NotificationLevelDefault NotificationLevel = iota
	NotificationLevelMuted
)

var notificationLevelNames = []string{"default", "muted"}

func (l NotificationLevel) Valid() bool {
	return inRange(int(l), notificationLevelNames)
}

func (l NotificationLevel) String() string {
	return enumString("NotificationLevel", int(l), notificationLevelNames)
}

func inRange(v int, names []string) bool {
	return v >= 0 && v < len(names)
}

func enumString(enum string, v int, names []string) string {
	if inRange(v, names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", enum, v)
}
