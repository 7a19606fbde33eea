package models

import (
	"time"

	"github.com/gocql/gocql"
)

const (
	NotificationConnectionRequest  = "connection_request"
	NotificationConnectionAccepted = "connection_accepted"
	NotificationConnectionRejected = "connection_rejected"
	NotificationProjectInvite      = "project_invite"
	NotificationInviteAccepted     = "invite_accepted"
	NotificationInviteDeclined     = "invite_declined"
	NotificationMemberLeft         = "member_left"
	NotificationMemberRemoved      = "member_removed"
	NotificationProjectDeleted     = "project_deleted"
	NotificationChatMessage        = "chat_message"
)

type Notification struct {
	ID        gocql.UUID `json:"id"`
	UserID    string     `json:"user_id"`
	Type      string     `json:"type"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	CreatedAt time.Time  `json:"created_at"`
}
