package service

import (
	"context"
	"fmt"
	"time"

	"collab-api/models"

	"github.com/gocql/gocql"
)

// ChatService manages direct conversations between connected users.
// Conversation documents live in Mongo; the message log lives in
// Cassandra keyed by conversation id.
type ChatService struct {
	conversations ConversationStore
	messages      MessageFeed
	users         UserStore
	notifier      *Notifier
}

func NewChatService(conversations ConversationStore, messages MessageFeed, users UserStore, notifier *Notifier) *ChatService {
	return &ChatService{conversations: conversations, messages: messages, users: users, notifier: notifier}
}

// CreateDirect returns the existing conversation for the pair if one
// exists, so the operation is idempotent per pair.
func (s *ChatService) CreateDirect(ctx context.Context, actorID, peerID string) (models.Conversation, error) {
	if peerID == "" {
		return models.Conversation{}, fmt.Errorf("%w: peer id is required", ErrValidation)
	}
	if peerID == actorID {
		return models.Conversation{}, fmt.Errorf("%w: cannot start a conversation with yourself", ErrValidation)
	}

	actor, found, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return models.Conversation{}, err
	}
	if !found {
		return models.Conversation{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	_, found, err = s.users.GetByID(ctx, peerID)
	if err != nil {
		return models.Conversation{}, err
	}
	if !found {
		return models.Conversation{}, fmt.Errorf("%w: peer not found", ErrNotFound)
	}

	connected := false
	for _, id := range actor.Connections {
		if id == peerID {
			connected = true
			break
		}
	}
	if !connected {
		return models.Conversation{}, fmt.Errorf("%w: users must be connected to chat", ErrConflict)
	}

	if existing, found, err := s.conversations.ByParticipants(ctx, actorID, peerID); err != nil {
		return models.Conversation{}, err
	} else if found {
		return existing, nil
	}

	conversation := models.Conversation{
		Participants: []string{actorID, peerID},
		LastRead:     map[string]time.Time{},
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.conversations.Insert(ctx, conversation)
	if err != nil {
		return models.Conversation{}, err
	}

	created, _, err := s.conversations.GetByID(ctx, id)
	return created, err
}

func (s *ChatService) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	return s.conversations.ListForUser(ctx, userID)
}

func (s *ChatService) SendMessage(ctx context.Context, actorID, conversationID, body string) (models.ChatMessage, error) {
	if body == "" {
		return models.ChatMessage{}, fmt.Errorf("%w: body is required", ErrValidation)
	}

	conversation, found, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if !found {
		return models.ChatMessage{}, fmt.Errorf("%w: conversation not found", ErrNotFound)
	}
	if !conversation.HasParticipant(actorID) {
		return models.ChatMessage{}, fmt.Errorf("%w: not a conversation participant", ErrForbidden)
	}

	id, err := gocql.RandomUUID()
	if err != nil {
		return models.ChatMessage{}, err
	}
	message := models.ChatMessage{
		ID:             id,
		ConversationID: conversationID,
		SenderID:       actorID,
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.Insert(message); err != nil {
		return models.ChatMessage{}, err
	}

	sender, found, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	text := "New chat message"
	if found {
		text = fmt.Sprintf("New message from %s %s", sender.FirstName, sender.Surname)
	}
	if err := s.notifier.Notify(conversation.Peer(actorID), models.NotificationChatMessage, text); err != nil {
		return models.ChatMessage{}, err
	}

	return message, nil
}

// ListMessages returns the conversation log with read flags derived
// from the recipient's last-read mark.
func (s *ChatService) ListMessages(ctx context.Context, actorID, conversationID string) ([]models.ChatMessage, error) {
	conversation, found, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: conversation not found", ErrNotFound)
	}
	if !conversation.HasParticipant(actorID) {
		return nil, fmt.Errorf("%w: not a conversation participant", ErrForbidden)
	}

	messages, err := s.messages.ListByConversation(conversationID)
	if err != nil {
		return nil, err
	}

	for i, m := range messages {
		recipient := conversation.Peer(m.SenderID)
		lastRead, ok := conversation.LastRead[recipient]
		messages[i].Read = ok && !m.CreatedAt.After(lastRead)
	}
	return messages, nil
}

func (s *ChatService) MarkRead(ctx context.Context, actorID, conversationID string) error {
	conversation, found, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: conversation not found", ErrNotFound)
	}
	if !conversation.HasParticipant(actorID) {
		return fmt.Errorf("%w: not a conversation participant", ErrForbidden)
	}
	return s.conversations.SetLastRead(ctx, conversationID, actorID, time.Now().UTC())
}
