package repoNotification

import (
	"fmt"
	"log"
	"os"
	"time"

	"collab-api/models"

	// NoSQL: module containing Cassandra api client
	"github.com/gocql/gocql"
)

// NotificationRepo encapsulates the Cassandra session for the
// per-user notification feed.
type NotificationRepo struct {
	session *gocql.Session
	logger  *log.Logger
}

func New(logger *log.Logger) (*NotificationRepo, error) {
	db := os.Getenv("CASS_DB")
	if db == "" {
		logger.Println("CASS_DB environment variable is not set")
		return nil, fmt.Errorf("CASS_DB environment variable is not set")
	}

	cluster := gocql.NewCluster(db)
	cluster.Keyspace = "system"
	cluster.Consistency = gocql.One

	var session *gocql.Session
	var err error

	for i := 0; i < 5; i++ {
		logger.Printf("Attempting to connect to Cassandra, try %d...\n", i+1)
		session, err = cluster.CreateSession()
		if err == nil {
			break
		}
		logger.Printf("Attempt %d: Failed to connect to Cassandra: %v\n", i+1, err)
		time.Sleep(10 * time.Second)
	}
	if err != nil {
		logger.Println("Failed to connect to Cassandra after 5 attempts.")
		return nil, err
	}

	err = session.Query(`
		CREATE KEYSPACE IF NOT EXISTS collab
		WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1}
	`).Exec()
	if err != nil {
		logger.Println("Error creating keyspace:", err)
	}
	session.Close()

	cluster.Keyspace = "collab"
	session, err = cluster.CreateSession()
	if err != nil {
		logger.Println("Error connecting to collab keyspace:", err)
		return nil, err
	}

	return &NotificationRepo{
		session: session,
		logger:  logger,
	}, nil
}

func (nr *NotificationRepo) CloseSession() {
	nr.session.Close()
}

// CreateTables makes the notifications table. Partitioned by
// recipient, clustered newest first.
func (nr *NotificationRepo) CreateTables() {
	err := nr.session.Query(
		`CREATE TABLE IF NOT EXISTS notifications
			(id UUID, user_id text, type text, message text, is_read boolean, created_at timestamp,
			PRIMARY KEY (user_id, created_at))
			WITH CLUSTERING ORDER BY (created_at DESC)`).Exec()
	if err != nil {
		nr.logger.Println(err)
	}
}

func (nr *NotificationRepo) Insert(notification models.Notification) error {
	err := nr.session.Query(
		`INSERT INTO notifications (id, user_id, type, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		notification.ID, notification.UserID, notification.Type, notification.Message,
		notification.Read, notification.CreatedAt).Exec()
	if err != nil {
		nr.logger.Println(err)
		return err
	}
	return nil
}

func (nr *NotificationRepo) ListByUser(userID string) ([]models.Notification, error) {
	iter := nr.session.Query(
		`SELECT id, user_id, type, message, is_read, created_at FROM notifications WHERE user_id = ?`,
		userID).Iter()

	notifications := []models.Notification{}
	var notification models.Notification
	for iter.Scan(&notification.ID, &notification.UserID, &notification.Type,
		&notification.Message, &notification.Read, &notification.CreatedAt) {
		notifications = append(notifications, notification)
	}

	if err := iter.Close(); err != nil {
		nr.logger.Printf("Failed to close iterator: %v", err)
		return nil, err
	}
	return notifications, nil
}

func (nr *NotificationRepo) MarkRead(userID string, createdAt time.Time) error {
	err := nr.session.Query(
		`UPDATE notifications SET is_read = true WHERE user_id = ? AND created_at = ?`,
		userID, createdAt).Exec()
	if err != nil {
		nr.logger.Println(err)
		return err
	}
	return nil
}
