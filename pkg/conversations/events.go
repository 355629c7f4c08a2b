package conversations

import (
	"github.com/xpanvictor/rxconversations/pkg/bridge"
)

// Client-level payloads.

type ConversationUpdatedEvent struct {
	Conversation Conversation
	Update       ConversationUpdate
}

type ConversationStatusEvent struct {
	Conversation Conversation
	Status       ConversationSynchronizationStatus
}

type ParticipantEvent struct {
	Conversation Conversation
	Participant  Participant
}

type ParticipantUpdatedEvent struct {
	Conversation Conversation
	Participant  Participant
	Update       ParticipantUpdate
}

type MessageEvent struct {
	Conversation Conversation
	Message      Message
}

type MessageUpdatedEvent struct {
	Conversation Conversation
	Message      Message
	Update       MessageUpdate
}

type NewMessageNotification struct {
	ConversationSID string
	MessageIndex    uint
}

type UserUpdatedEvent struct {
	User   User
	Update UserUpdate
}

// Conversation-level payloads; the conversation itself is the sender.

type ParticipantChange struct {
	Participant Participant
	Update      ParticipantUpdate
}

type MessageChange struct {
	Message Message
	Update  MessageUpdate
}

type ParticipantUser struct {
	Participant Participant
	User        User
}

type ParticipantUserUpdate struct {
	Participant Participant
	User        User
	Update      UserUpdate
}

// Client delegate: sender is args[0].
var (
	clientConnectionStateUpdated                   = bridge.SingleEnum[ConnectionState]("client.connectionStateUpdated", 1)
	clientTokenExpired                             = bridge.Signal("client.tokenExpired", 1)
	clientTokenWillExpire                          = bridge.Signal("client.tokenWillExpire", 1)
	clientSynchronizationStatusUpdated             = bridge.SingleEnum[ClientSynchronizationStatus]("client.synchronizationStatusUpdated", 1)
	clientConversationAdded                        = bridge.Single[Conversation]("client.conversationAdded", 1)
	clientConversationUpdated                      = bridge.Event[ConversationUpdatedEvent]{Name: "client.conversationUpdated", Skip: 1, Decode: decodeConversationUpdated}
	clientConversationSynchronizationStatusUpdated = bridge.Event[ConversationStatusEvent]{Name: "client.conversationSynchronizationStatusUpdated", Skip: 1, Decode: decodeConversationStatus}
	clientConversationDeleted                      = bridge.Single[Conversation]("client.conversationDeleted", 1)
	clientParticipantJoined                        = participantEvent("client.participantJoined")
	clientParticipantLeft                          = participantEvent("client.participantLeft")
	clientParticipantUpdated                       = bridge.Event[ParticipantUpdatedEvent]{Name: "client.participantUpdated", Skip: 1, Decode: decodeParticipantUpdated}
	clientMessageAdded                             = messageEvent("client.messageAdded")
	clientMessageDeleted                           = messageEvent("client.messageDeleted")
	clientMessageUpdated                           = bridge.Event[MessageUpdatedEvent]{Name: "client.messageUpdated", Skip: 1, Decode: decodeMessageUpdated}
	clientErrorReceived                            = bridge.Single[*Error]("client.errorReceived", 1)
	clientTypingStarted                            = participantEvent("client.typingStarted")
	clientTypingEnded                              = participantEvent("client.typingEnded")
	clientNewMessageNotification                   = bridge.Event[NewMessageNotification]{Name: "client.notificationNewMessageReceived", Skip: 1, Decode: decodeNewMessageNotification}
	clientAddedToConversation                      = bridge.Single[string]("client.notificationAddedToConversation", 1)
	clientRemovedFromConversation                  = bridge.Single[string]("client.notificationRemovedFromConversation", 1)
	clientBadgeCountUpdated                        = bridge.Single[uint]("client.notificationUpdatedBadgeCount", 1)
	clientUserUpdated                              = bridge.Event[UserUpdatedEvent]{Name: "client.userUpdated", Skip: 1, Decode: decodeUserUpdated}
	clientUserSubscribed                           = bridge.Single[User]("client.userSubscribed", 1)
	clientUserUnsubscribed                         = bridge.Single[User]("client.userUnsubscribed", 1)
)

// Conversation delegate: senders are args[0] (client) and args[1] (conversation).
var (
	conversationUpdated                      = bridge.SingleEnum[ConversationUpdate]("conversation.updated", 2)
	conversationDeleted                      = bridge.Signal("conversation.deleted", 2)
	conversationSynchronizationStatusUpdated = bridge.SingleEnum[ConversationSynchronizationStatus]("conversation.synchronizationStatusUpdated", 2)
	conversationParticipantJoined            = bridge.Single[Participant]("conversation.participantJoined", 2)
	conversationParticipantLeft              = bridge.Single[Participant]("conversation.participantLeft", 2)
	conversationParticipantUpdated           = bridge.Event[ParticipantChange]{Name: "conversation.participantUpdated", Skip: 2, Decode: decodeParticipantChange}
	conversationMessageAdded                 = bridge.Single[Message]("conversation.messageAdded", 2)
	conversationMessageDeleted               = bridge.Single[Message]("conversation.messageDeleted", 2)
	conversationMessageUpdated               = bridge.Event[MessageChange]{Name: "conversation.messageUpdated", Skip: 2, Decode: decodeMessageChange}
	conversationTypingStarted                = bridge.Single[Participant]("conversation.typingStarted", 2)
	conversationTypingEnded                  = bridge.Single[Participant]("conversation.typingEnded", 2)
	conversationUserUpdated                  = bridge.Event[ParticipantUserUpdate]{Name: "conversation.userUpdated", Skip: 2, Decode: decodeParticipantUserUpdate}
	conversationUserSubscribed               = participantUserEvent("conversation.userSubscribed")
	conversationUserUnsubscribed             = participantUserEvent("conversation.userUnsubscribed")
)

func decodeConversationUpdated(f bridge.Frame) (ConversationUpdatedEvent, error) {
	c, err := bridge.Arg[Conversation](f, 0)
	if err != nil {
		return ConversationUpdatedEvent{}, err
	}
	u, err := bridge.EnumArg[ConversationUpdate](f, 1)
	if err != nil {
		return ConversationUpdatedEvent{}, err
	}
	return ConversationUpdatedEvent{Conversation: c, Update: u}, nil
}

func decodeConversationStatus(f bridge.Frame) (ConversationStatusEvent, error) {
	c, err := bridge.Arg[Conversation](f, 0)
	if err != nil {
		return ConversationStatusEvent{}, err
	}
	s, err := bridge.EnumArg[ConversationSynchronizationStatus](f, 1)
	if err != nil {
		return ConversationStatusEvent{}, err
	}
	return ConversationStatusEvent{Conversation: c, Status: s}, nil
}

func decodeParticipantUpdated(f bridge.Frame) (ParticipantUpdatedEvent, error) {
	pe, err := decodeParticipantEvent(f)
	if err != nil {
		return ParticipantUpdatedEvent{}, err
	}
	u, err := bridge.EnumArg[ParticipantUpdate](f, 2)
	if err != nil {
		return ParticipantUpdatedEvent{}, err
	}
	return ParticipantUpdatedEvent{Conversation: pe.Conversation, Participant: pe.Participant, Update: u}, nil
}

func decodeMessageUpdated(f bridge.Frame) (MessageUpdatedEvent, error) {
	me, err := decodeMessageEvent(f)
	if err != nil {
		return MessageUpdatedEvent{}, err
	}
	u, err := bridge.EnumArg[MessageUpdate](f, 2)
	if err != nil {
		return MessageUpdatedEvent{}, err
	}
	return MessageUpdatedEvent{Conversation: me.Conversation, Message: me.Message, Update: u}, nil
}

func decodeNewMessageNotification(f bridge.Frame) (NewMessageNotification, error) {
	sid, err := bridge.Arg[string](f, 0)
	if err != nil {
		return NewMessageNotification{}, err
	}
	idx, err := bridge.Arg[uint](f, 1)
	if err != nil {
		return NewMessageNotification{}, err
	}
	return NewMessageNotification{ConversationSID: sid, MessageIndex: idx}, nil
}

func decodeUserUpdated(f bridge.Frame) (UserUpdatedEvent, error) {
	u, err := bridge.Arg[User](f, 0)
	if err != nil {
		return UserUpdatedEvent{}, err
	}
	up, err := bridge.EnumArg[UserUpdate](f, 1)
	if err != nil {
		return UserUpdatedEvent{}, err
	}
	return UserUpdatedEvent{User: u, Update: up}, nil
}

func decodeParticipantChange(f bridge.Frame) (ParticipantChange, error) {
	p, err := bridge.Arg[Participant](f, 0)
	if err != nil {
		return ParticipantChange{}, err
	}
	u, err := bridge.EnumArg[ParticipantUpdate](f, 1)
	if err != nil {
		return ParticipantChange{}, err
	}
	return ParticipantChange{Participant: p, Update: u}, nil
}

func decodeMessageChange(f bridge.Frame) (MessageChange, error) {
	m, err := bridge.Arg[Message](f, 0)
	if err != nil {
		return MessageChange{}, err
	}
	u, err := bridge.EnumArg[MessageUpdate](f, 1)
	if err != nil {
		return MessageChange{}, err
	}
	return MessageChange{Message: m, Update: u}, nil
}

func decodeParticipantUserUpdate(f bridge.Frame) (ParticipantUserUpdate, error) {
	pu, err := decodeParticipantUser(f)
	if err != nil {
		return ParticipantUserUpdate{}, err
	}
	u, err := bridge.EnumArg[UserUpdate](f, 2)
	if err != nil {
		return ParticipantUserUpdate{}, err
	}
	return ParticipantUserUpdate{Participant: pu.Participant, User: pu.User, Update: u}, nil
}

func participantEvent(name string) bridge.Event[ParticipantEvent] {
	return bridge.Event[ParticipantEvent]{Name: name, Skip: 1, Decode: decodeParticipantEvent}
}

func decodeParticipantEvent(f bridge.Frame) (ParticipantEvent, error) {
	c, err := bridge.Arg[Conversation](f, 0)
	if err != nil {
		return ParticipantEvent{}, err
	}
	p, err := bridge.Arg[Participant](f, 1)
	if err != nil {
		return ParticipantEvent{}, err
	}
	return ParticipantEvent{Conversation: c, Participant: p}, nil
}

func messageEvent(name string) bridge.Event[MessageEvent] {
	return bridge.Event[MessageEvent]{Name: name, Skip: 1, Decode: decodeMessageEvent}
}

func decodeMessageEvent(f bridge.Frame) (MessageEvent, error) {
	c, err := bridge.Arg[Conversation](f, 0)
	if err != nil {
		return MessageEvent{}, err
	}
	m, err := bridge.Arg[Message](f, 1)
	if err != nil {
		return MessageEvent{}, err
	}
	return MessageEvent{Conversation: c, Message: m}, nil
}

func participantUserEvent(name string) bridge.Event[ParticipantUser] {
	return bridge.Event[ParticipantUser]{Name: name, Skip: 2, Decode: decodeParticipantUser}
}

func decodeParticipantUser(f bridge.Frame) (ParticipantUser, error) {
	p, err := bridge.Arg[Participant](f, 0)
	if err != nil {
		return ParticipantUser{}, err
	}
	u, err := bridge.Arg[User](f, 1)
	if err != nil {
		return ParticipantUser{}, err
	}
	return ParticipantUser{Participant: p, User: u}, nil
}
