package db

import (
	"context"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TaskRepo struct {
	cli *mongo.Client
}

func NewTaskRepo(client *mongo.Client) *TaskRepo {
	return &TaskRepo{cli: client}
}

func (r *TaskRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("tasks")
}

func (r *TaskRepo) Insert(ctx context.Context, task models.Task) (string, error) {
	res, err := r.collection().InsertOne(ctx, task)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (models.Task, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Task{}, false, nil
	}

	var task models.Task
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&task)
	if err == mongo.ErrNoDocuments {
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, err
	}
	return task, true, nil
}

func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}

	tasks := []models.Task{}
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) Update(ctx context.Context, task models.Task) error {
	update := bson.M{"$set": bson.M{
		"description": task.Description,
		"milestones":  task.Milestones,
		"completed":   task.Completed,
	}}
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": task.ID}, update)
	return err
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *TaskRepo) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
