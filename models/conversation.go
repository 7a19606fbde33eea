package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation is a direct chat between two connected users. The
// messages themselves live in Cassandra keyed by the conversation id;
// LastRead keeps a per-participant read mark.
type Conversation struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Participants []string             `bson:"participants" json:"participants"`
	LastRead     map[string]time.Time `bson:"lastRead" json:"lastRead"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
}

func (c Conversation) HasParticipant(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// Peer returns the other participant of a direct conversation.
func (c Conversation) Peer(userID string) string {
	for _, id := range c.Participants {
		if id != userID {
			return id
		}
	}
	return ""
}
