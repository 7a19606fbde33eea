package models

import (
	"time"

	"github.com/gocql/gocql"
)

type ChatMessage struct {
	ID             gocql.UUID `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	Body           string     `json:"body"`
	// Read is derived when listing: true once the counterpart's
	// last-read mark has passed CreatedAt.
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
