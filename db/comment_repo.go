package db

import (
	"context"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CommentRepo struct {
	cli *mongo.Client
}

func NewCommentRepo(client *mongo.Client) *CommentRepo {
	return &CommentRepo{cli: client}
}

func (r *CommentRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("comments")
}

func (r *CommentRepo) Insert(ctx context.Context, comment models.Comment) (string, error) {
	res, err := r.collection().InsertOne(ctx, comment)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CommentRepo) GetByID(ctx context.Context, id string) (models.Comment, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Comment{}, false, nil
	}

	var comment models.Comment
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&comment)
	if err == mongo.ErrNoDocuments {
		return models.Comment{}, false, nil
	}
	if err != nil {
		return models.Comment{}, false, err
	}
	return comment, true, nil
}

func (r *CommentRepo) ListByProject(ctx context.Context, projectID string) ([]models.Comment, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	comments := []models.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *CommentRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *CommentRepo) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
