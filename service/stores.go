package service

import (
	"context"
	"time"

	"collab-api/models"
)

// Store interfaces implemented by the Mongo repos in db/ and the
// Cassandra repos in repoNotification/ and repoChat/. Lookups report
// absence through the bool so the error kind stays a service concern.

type UserStore interface {
	Insert(ctx context.Context, u models.User) (string, error)
	GetByID(ctx context.Context, id string) (models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (models.User, bool, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateSettings(ctx context.Context, id, firstName, surname, telephone string) error
	AddConnection(ctx context.Context, userID, otherID string) error
	RemoveConnection(ctx context.Context, userID, otherID string) error
}

type ConnectionRequestStore interface {
	Insert(ctx context.Context, req models.ConnectionRequest) (string, error)
	GetByID(ctx context.Context, id string) (models.ConnectionRequest, bool, error)
	// PendingBetween matches a pending request in either direction.
	PendingBetween(ctx context.Context, a, b string) (models.ConnectionRequest, bool, error)
	ListPendingFor(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
	Delete(ctx context.Context, id string) error
}

type ProjectStore interface {
	Insert(ctx context.Context, p models.Project) (string, error)
	GetByID(ctx context.Context, id string) (models.Project, bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.Project, error)
	UpdateMeta(ctx context.Context, p models.Project) error
	AddCollaborator(ctx context.Context, projectID, userID string) error
	RemoveCollaborator(ctx context.Context, projectID, userID string) error
	Delete(ctx context.Context, id string) error
}

type TaskStore interface {
	Insert(ctx context.Context, t models.Task) (string, error)
	GetByID(ctx context.Context, id string) (models.Task, bool, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Task, error)
	Update(ctx context.Context, t models.Task) error
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type CommentStore interface {
	Insert(ctx context.Context, c models.Comment) (string, error)
	GetByID(ctx context.Context, id string) (models.Comment, bool, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type InvitationStore interface {
	Insert(ctx context.Context, inv models.ProjectInvitation) (string, error)
	GetByID(ctx context.Context, id string) (models.ProjectInvitation, bool, error)
	PendingFor(ctx context.Context, projectID, inviteeID string) (models.ProjectInvitation, bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.ProjectInvitation, error)
	Delete(ctx context.Context, id string) error
	DeleteByProject(ctx context.Context, projectID string) error
}

type ConversationStore interface {
	Insert(ctx context.Context, c models.Conversation) (string, error)
	GetByID(ctx context.Context, id string) (models.Conversation, bool, error)
	ByParticipants(ctx context.Context, a, b string) (models.Conversation, bool, error)
	ListForUser(ctx context.Context, userID string) ([]models.Conversation, error)
	SetLastRead(ctx context.Context, convID, userID string, at time.Time) error
}

// NotificationFeed and MessageFeed are the Cassandra-backed feeds.
// The gocql session carries its own timeouts, so no context here.

type NotificationFeed interface {
	Insert(n models.Notification) error
	ListByUser(userID string) ([]models.Notification, error)
	MarkRead(userID string, createdAt time.Time) error
}

type MessageFeed interface {
	Insert(m models.ChatMessage) error
	ListByConversation(conversationID string) ([]models.ChatMessage, error)
}
