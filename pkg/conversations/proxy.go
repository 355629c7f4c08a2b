package conversations

import (
	"github.com/xpanvictor/rxconversations/pkg/bridge"
)

// clientProxy is installed as the client's delegate. Every callback is
// published to the dispatcher with its raw arguments, then handed to the
// delegate that was installed before the proxy.
type clientProxy struct {
	d       *bridge.Dispatcher
	next    ClientDelegate
	forward bool
}

var _ ClientDelegate = (*clientProxy)(nil)

func (p *clientProxy) to() ClientDelegate {
	if p.forward {
		return p.next
	}
	return nil
}

func (p *clientProxy) ConnectionStateUpdated(client Client, state int) {
	p.d.Invoke(clientConnectionStateUpdated.Name, client, state)
	if n := p.to(); n != nil {
		n.ConnectionStateUpdated(client, state)
	}
}

func (p *clientProxy) TokenExpired(client Client) {
	p.d.Invoke(clientTokenExpired.Name, client)
	if n := p.to(); n != nil {
		n.TokenExpired(client)
	}
}

func (p *clientProxy) TokenWillExpire(client Client) {
	p.d.Invoke(clientTokenWillExpire.Name, client)
	if n := p.to(); n != nil {
		n.TokenWillExpire(client)
	}
}

func (p *clientProxy) SynchronizationStatusUpdated(client Client, status int) {
	p.d.Invoke(clientSynchronizationStatusUpdated.Name, client, status)
	if n := p.to(); n != nil {
		n.SynchronizationStatusUpdated(client, status)
	}
}

func (p *clientProxy) ConversationAdded(client Client, conversation Conversation) {
	p.d.Invoke(clientConversationAdded.Name, client, conversation)
	if n := p.to(); n != nil {
		n.ConversationAdded(client, conversation)
	}
}

func (p *clientProxy) ConversationUpdated(client Client, conversation Conversation, update int) {
	p.d.Invoke(clientConversationUpdated.Name, client, conversation, update)
	if n := p.to(); n != nil {
		n.ConversationUpdated(client, conversation, update)
	}
}

func (p *clientProxy) ConversationSynchronizationStatusUpdated(client Client, conversation Conversation, status int) {
	p.d.Invoke(clientConversationSynchronizationStatusUpdated.Name, client, conversation, status)
	if n := p.to(); n != nil {
		n.ConversationSynchronizationStatusUpdated(client, conversation, status)
	}
}

func (p *clientProxy) ConversationDeleted(client Client, conversation Conversation) {
	p.d.Invoke(clientConversationDeleted.Name, client, conversation)
	if n := p.to(); n != nil {
		n.ConversationDeleted(client, conversation)
	}
}

func (p *clientProxy) ParticipantJoined(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(clientParticipantJoined.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.ParticipantJoined(client, conversation, participant)
	}
}

func (p *clientProxy) ParticipantUpdated(client Client, conversation Conversation, participant Participant, update int) {
	p.d.Invoke(clientParticipantUpdated.Name, client, conversation, participant, update)
	if n := p.to(); n != nil {
		n.ParticipantUpdated(client, conversation, participant, update)
	}
}

func (p *clientProxy) ParticipantLeft(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(clientParticipantLeft.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.ParticipantLeft(client, conversation, participant)
	}
}

func (p *clientProxy) MessageAdded(client Client, conversation Conversation, message Message) {
	p.d.Invoke(clientMessageAdded.Name, client, conversation, message)
	if n := p.to(); n != nil {
		n.MessageAdded(client, conversation, message)
	}
}

func (p *clientProxy) MessageUpdated(client Client, conversation Conversation, message Message, update int) {
	p.d.Invoke(clientMessageUpdated.Name, client, conversation, message, update)
	if n := p.to(); n != nil {
		n.MessageUpdated(client, conversation, message, update)
	}
}

func (p *clientProxy) MessageDeleted(client Client, conversation Conversation, message Message) {
	p.d.Invoke(clientMessageDeleted.Name, client, conversation, message)
	if n := p.to(); n != nil {
		n.MessageDeleted(client, conversation, message)
	}
}

func (p *clientProxy) ErrorReceived(client Client, err *Error) {
	p.d.Invoke(clientErrorReceived.Name, client, err)
	if n := p.to(); n != nil {
		n.ErrorReceived(client, err)
	}
}

func (p *clientProxy) TypingStarted(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(clientTypingStarted.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.TypingStarted(client, conversation, participant)
	}
}

func (p *clientProxy) TypingEnded(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(clientTypingEnded.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.TypingEnded(client, conversation, participant)
	}
}

func (p *clientProxy) NewMessageNotification(client Client, conversationSID string, messageIndex uint) {
	p.d.Invoke(clientNewMessageNotification.Name, client, conversationSID, messageIndex)
	if n := p.to(); n != nil {
		n.NewMessageNotification(client, conversationSID, messageIndex)
	}
}

func (p *clientProxy) AddedToConversationNotification(client Client, conversationSID string) {
	p.d.Invoke(clientAddedToConversation.Name, client, conversationSID)
	if n := p.to(); n != nil {
		n.AddedToConversationNotification(client, conversationSID)
	}
}

func (p *clientProxy) RemovedFromConversationNotification(client Client, conversationSID string) {
	p.d.Invoke(clientRemovedFromConversation.Name, client, conversationSID)
	if n := p.to(); n != nil {
		n.RemovedFromConversationNotification(client, conversationSID)
	}
}

func (p *clientProxy) NotificationBadgeCountUpdated(client Client, badgeCount uint) {
	p.d.Invoke(clientBadgeCountUpdated.Name, client, badgeCount)
	if n := p.to(); n != nil {
		n.NotificationBadgeCountUpdated(client, badgeCount)
	}
}

func (p *clientProxy) UserUpdated(client Client, user User, update int) {
	p.d.Invoke(clientUserUpdated.Name, client, user, update)
	if n := p.to(); n != nil {
		n.UserUpdated(client, user, update)
	}
}

func (p *clientProxy) UserSubscribed(client Client, user User) {
	p.d.Invoke(clientUserSubscribed.Name, client, user)
	if n := p.to(); n != nil {
		n.UserSubscribed(client, user)
	}
}

func (p *clientProxy) UserUnsubscribed(client Client, user User) {
	p.d.Invoke(clientUserUnsubscribed.Name, client, user)
	if n := p.to(); n != nil {
		n.UserUnsubscribed(client, user)
	}
}

type conversationProxy struct {
	d       *bridge.Dispatcher
	next    ConversationDelegate
	forward bool
}

var _ ConversationDelegate = (*conversationProxy)(nil)

func (p *conversationProxy) to() ConversationDelegate {
	if p.forward {
		return p.next
	}
	return nil
}

func (p *conversationProxy) ConversationUpdated(client Client, conversation Conversation, update int) {
	p.d.Invoke(conversationUpdated.Name, client, conversation, update)
	if n := p.to(); n != nil {
		n.ConversationUpdated(client, conversation, update)
	}
}

func (p *conversationProxy) ConversationDeleted(client Client, conversation Conversation) {
	p.d.Invoke(conversationDeleted.Name, client, conversation)
	if n := p.to(); n != nil {
		n.ConversationDeleted(client, conversation)
	}
}

func (p *conversationProxy) SynchronizationStatusUpdated(client Client, conversation Conversation, status int) {
	p.d.Invoke(conversationSynchronizationStatusUpdated.Name, client, conversation, status)
	if n := p.to(); n != nil {
		n.SynchronizationStatusUpdated(client, conversation, status)
	}
}

func (p *conversationProxy) ParticipantJoined(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(conversationParticipantJoined.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.ParticipantJoined(client, conversation, participant)
	}
}

func (p *conversationProxy) ParticipantUpdated(client Client, conversation Conversation, participant Participant, update int) {
	p.d.Invoke(conversationParticipantUpdated.Name, client, conversation, participant, update)
	if n := p.to(); n != nil {
		n.ParticipantUpdated(client, conversation, participant, update)
	}
}

func (p *conversationProxy) ParticipantLeft(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(conversationParticipantLeft.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.ParticipantLeft(client, conversation, participant)
	}
}

func (p *conversationProxy) MessageAdded(client Client, conversation Conversation, message Message) {
	p.d.Invoke(conversationMessageAdded.Name, client, conversation, message)
	if n := p.to(); n != nil {
		n.MessageAdded(client, conversation, message)
	}
}

func (p *conversationProxy) MessageUpdated(client Client, conversation Conversation, message Message, update int) {
	p.d.Invoke(conversationMessageUpdated.Name, client, conversation, message, update)
	if n := p.to(); n != nil {
		n.MessageUpdated(client, conversation, message, update)
	}
}

func (p *conversationProxy) MessageDeleted(client Client, conversation Conversation, message Message) {
	p.d.Invoke(conversationMessageDeleted.Name, client, conversation, message)
	if n := p.to(); n != nil {
		n.MessageDeleted(client, conversation, message)
	}
}

func (p *conversationProxy) TypingStarted(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(conversationTypingStarted.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.TypingStarted(client, conversation, participant)
	}
}

func (p *conversationProxy) TypingEnded(client Client, conversation Conversation, participant Participant) {
	p.d.Invoke(conversationTypingEnded.Name, client, conversation, participant)
	if n := p.to(); n != nil {
		n.TypingEnded(client, conversation, participant)
	}
}

func (p *conversationProxy) UserUpdated(client Client, conversation Conversation, participant Participant, user User, update int) {
	p.d.Invoke(conversationUserUpdated.Name, client, conversation, participant, user, update)
	if n := p.to(); n != nil {
		n.UserUpdated(client, conversation, participant, user, update)
	}
}

func (p *conversationProxy) UserSubscribed(client Client, conversation Conversation, participant Participant, user User) {
	p.d.Invoke(conversationUserSubscribed.Name, client, conversation, participant, user)
	if n := p.to(); n != nil {
		n.UserSubscribed(client, conversation, participant, user)
	}
}

func (p *conversationProxy) UserUnsubscribed(client Client, conversation Conversation, participant Participant, user User) {
	p.d.Invoke(conversationUserUnsubscribed.Name, client, conversation, participant, user)
	if n := p.to(); n != nil {
		n.UserUnsubscribed(client, conversation, participant, user)
	}
}
