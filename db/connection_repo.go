package db

import (
	"context"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConnectionRequestRepo struct {
	cli *mongo.Client
}

func NewConnectionRequestRepo(client *mongo.Client) *ConnectionRequestRepo {
	return &ConnectionRequestRepo{cli: client}
}

func (r *ConnectionRequestRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("connection_requests")
}

func (r *ConnectionRequestRepo) Insert(ctx context.Context, req models.ConnectionRequest) (string, error) {
	res, err := r.collection().InsertOne(ctx, req)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ConnectionRequestRepo) GetByID(ctx context.Context, id string) (models.ConnectionRequest, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ConnectionRequest{}, false, nil
	}

	var req models.ConnectionRequest
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return models.ConnectionRequest{}, false, nil
	}
	if err != nil {
		return models.ConnectionRequest{}, false, err
	}
	return req, true, nil
}

func (r *ConnectionRequestRepo) PendingBetween(ctx context.Context, a, b string) (models.ConnectionRequest, bool, error) {
	filter := bson.M{
		"status": models.ConnectionPending,
		"$or": []bson.M{
			{"from": a, "to": b},
			{"from": b, "to": a},
		},
	}

	var req models.ConnectionRequest
	err := r.collection().FindOne(ctx, filter).Decode(&req)
	if err == mongo.ErrNoDocuments {
		return models.ConnectionRequest{}, false, nil
	}
	if err != nil {
		return models.ConnectionRequest{}, false, err
	}
	return req, true, nil
}

func (r *ConnectionRequestRepo) ListPendingFor(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"to": userID, "status": models.ConnectionPending})
	if err != nil {
		return nil, err
	}

	requests := []models.ConnectionRequest{}
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *ConnectionRequestRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
