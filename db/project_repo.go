package db

import (
	"context"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectRepo struct {
	cli *mongo.Client
}

func NewProjectRepo(client *mongo.Client) *ProjectRepo {
	return &ProjectRepo{cli: client}
}

func (r *ProjectRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("projects")
}

func (r *ProjectRepo) Insert(ctx context.Context, project models.Project) (string, error) {
	res, err := r.collection().InsertOne(ctx, project)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProjectRepo) GetByID(ctx context.Context, id string) (models.Project, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Project{}, false, nil
	}

	var project models.Project
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&project)
	if err == mongo.ErrNoDocuments {
		return models.Project{}, false, nil
	}
	if err != nil {
		return models.Project{}, false, err
	}
	return project, true, nil
}

func (r *ProjectRepo) ListForUser(ctx context.Context, userID string) ([]models.Project, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"collaborators": userID})
	if err != nil {
		return nil, err
	}

	projects := []models.Project{}
	if err = cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) UpdateMeta(ctx context.Context, project models.Project) error {
	update := bson.M{"$set": bson.M{
		"title":       project.Title,
		"description": project.Description,
		"status":      project.Status,
		"deadline":    project.Deadline,
	}}
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": project.ID}, update)
	return err
}

func (r *ProjectRepo) AddCollaborator(ctx context.Context, projectID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return err
	}

	_, err = r.collection().UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$addToSet": bson.M{"collaborators": userID}},
	)
	return err
}

func (r *ProjectRepo) RemoveCollaborator(ctx context.Context, projectID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return err
	}

	_, err = r.collection().UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$pull": bson.M{"collaborators": userID}},
	)
	return err
}

func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
