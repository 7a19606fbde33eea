package service

import (
	"fmt"
	"time"

	"collab-api/models"
)

type NotificationService struct {
	feed NotificationFeed
}

func NewNotificationService(feed NotificationFeed) *NotificationService {
	return &NotificationService{feed: feed}
}

func (s *NotificationService) ListForUser(userID string) ([]models.Notification, error) {
	return s.feed.ListByUser(userID)
}

func (s *NotificationService) MarkRead(userID string, createdAt time.Time) error {
	if createdAt.IsZero() {
		return fmt.Errorf("%w: created_at is required", ErrValidation)
	}
	return s.feed.MarkRead(userID, createdAt)
}
