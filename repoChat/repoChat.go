package repoChat

import (
	"fmt"
	"log"
	"os"
	"time"

	"collab-api/models"

	"github.com/gocql/gocql"
)

// ChatRepo holds the Cassandra session for the chat message log,
// partitioned by conversation and clustered by send time.
type ChatRepo struct {
	session *gocql.Session
	logger  *log.Logger
}

func New(logger *log.Logger) (*ChatRepo, error) {
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

	return &ChatRepo{
		session: session,
		logger:  logger,
	}, nil
}

func (cr *ChatRepo) CloseSession() {
	cr.session.Close()
}

func (cr *ChatRepo) CreateTables() {
	err := cr.session.Query(
		`CREATE TABLE IF NOT EXISTS messages
			(id UUID, conversation_id text, sender_id text, body text, created_at timestamp,
			PRIMARY KEY (conversation_id, created_at))`).Exec()
	if err != nil {
		cr.logger.Println(err)
	}
}

func (cr *ChatRepo) Insert(message models.ChatMessage) error {
	err := cr.session.Query(
		`INSERT INTO messages (id, conversation_id, sender_id, body, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		message.ID, message.ConversationID, message.SenderID, message.Body, message.CreatedAt).Exec()
	if err != nil {
		cr.logger.Println(err)
		return err
	}
	return nil
}

func (cr *ChatRepo) ListByConversation(conversationID string) ([]models.ChatMessage, error) {
	iter := cr.session.Query(
		`SELECT id, conversation_id, sender_id, body, created_at FROM messages WHERE conversation_id = ?`,
		conversationID).Iter()

	messages := []models.ChatMessage{}
	var message models.ChatMessage
	for iter.Scan(&message.ID, &message.ConversationID, &message.SenderID,
		&message.Body, &message.CreatedAt) {
		messages = append(messages, message)
	}

	if err := iter.Close(); err != nil {
		cr.logger.Printf("Failed to close iterator: %v", err)
		return nil, err
	}
	return messages, nil
}
