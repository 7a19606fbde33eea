package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	OwnerID       string             `bson:"ownerId" json:"ownerId"`
	Collaborators []string           `bson:"collaborators" json:"collaborators"`
	Deadline      time.Time          `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsCollaborator reports whether the user has write access to the
// project. The owner is always part of the collaborator set.
func (p Project) IsCollaborator(userID string) bool {
	for _, id := range p.Collaborators {
		if id == userID {
			return true
		}
	}
	return false
}
