package service

import (
	"encoding/json"
	"log"
	"time"

	"collab-api/models"

	"github.com/gocql/gocql"
	"github.com/nats-io/nats.go"
)

// Notifier performs the notification fan-out: one feed document per
// affected counterpart, written synchronously. A failed feed write
// fails the calling request. The NATS publish for live listeners is
// best-effort and only logged on failure.
type Notifier struct {
	feed   NotificationFeed
	nc     *nats.Conn
	logger *log.Logger
}

func NewNotifier(feed NotificationFeed, nc *nats.Conn, logger *log.Logger) *Notifier {
	return &Notifier{feed: feed, nc: nc, logger: logger}
}

func (n *Notifier) Notify(userID, kind, message string) error {
	id, err := gocql.RandomUUID()
	if err != nil {
		return err
	}

	notification := models.Notification{
		ID:        id,
		UserID:    userID,
		Type:      kind,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := n.feed.Insert(notification); err != nil {
		return err
	}

	if n.nc != nil {
		data, err := json.Marshal(notification)
		if err == nil {
			err = n.nc.Publish("notifications."+kind, data)
		}
		if err != nil {
			n.logger.Println("Error publishing notification to NATS:", err)
		}
	}

	return nil
}

// NotifyAll fans out the same notification to every recipient. The
// first failed write aborts, matching the per-request failure model.
func (n *Notifier) NotifyAll(userIDs []string, kind, message string) error {
	for _, id := range userIDs {
		if err := n.Notify(id, kind, message); err != nil {
			return err
		}
	}
	return nil
}
