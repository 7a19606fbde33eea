package db

import (
	"context"
	"time"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConversationRepo struct {
	cli *mongo.Client
}

func NewConversationRepo(client *mongo.Client) *ConversationRepo {
	return &ConversationRepo{cli: client}
}

func (r *ConversationRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("conversations")
}

func (r *ConversationRepo) Insert(ctx context.Context, conversation models.Conversation) (string, error) {
	res, err := r.collection().InsertOne(ctx, conversation)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConversationRepo) GetByID(ctx context.Context, id string) (models.Conversation, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Conversation{}, false, nil
	}

	var conversation models.Conversation
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&conversation)
	if err == mongo.ErrNoDocuments {
		return models.Conversation{}, false, nil
	}
	if err != nil {
		return models.Conversation{}, false, err
	}
	return conversation, true, nil
}

func (r *ConversationRepo) ByParticipants(ctx context.Context, a, b string) (models.Conversation, bool, error) {
	filter := bson.M{"participants": bson.M{"$all": []string{a, b}}}

	var conversation models.Conversation
	err := r.collection().FindOne(ctx, filter).Decode(&conversation)
	if err == mongo.ErrNoDocuments {
		return models.Conversation{}, false, nil
	}
	if err != nil {
		return models.Conversation{}, false, err
	}
	return conversation, true, nil
}

func (r *ConversationRepo) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"participants": userID})
	if err != nil {
		return nil, err
	}

	conversations := []models.Conversation{}
	if err = cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *ConversationRepo) SetLastRead(ctx context.Context, conversationID, userID string, at time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"lastRead." + userID: at}}
	_, err = r.collection().UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}
