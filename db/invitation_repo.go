package db

import (
	"context"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InvitationRepo struct {
	cli *mongo.Client
}

func NewInvitationRepo(client *mongo.Client) *InvitationRepo {
	return &InvitationRepo{cli: client}
}

func (r *InvitationRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("invitations")
}

func (r *InvitationRepo) Insert(ctx context.Context, invitation models.ProjectInvitation) (string, error) {
	res, err := r.collection().InsertOne(ctx, invitation)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *InvitationRepo) GetByID(ctx context.Context, id string) (models.ProjectInvitation, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ProjectInvitation{}, false, nil
	}

	var invitation models.ProjectInvitation
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&invitation)
	if err == mongo.ErrNoDocuments {
		return models.ProjectInvitation{}, false, nil
	}
	if err != nil {
		return models.ProjectInvitation{}, false, err
	}
	return invitation, true, nil
}

func (r *InvitationRepo) PendingFor(ctx context.Context, projectID, inviteeID string) (models.ProjectInvitation, bool, error) {
	filter := bson.M{
		"project_id": projectID,
		"invitee_id": inviteeID,
		"status":     models.InvitationPending,
	}

	var invitation models.ProjectInvitation
	err := r.collection().FindOne(ctx, filter).Decode(&invitation)
	if err == mongo.ErrNoDocuments {
		return models.ProjectInvitation{}, false, nil
	}
	if err != nil {
		return models.ProjectInvitation{}, false, err
	}
	return invitation, true, nil
}

func (r *InvitationRepo) ListForUser(ctx context.Context, userID string) ([]models.ProjectInvitation, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"invitee_id": userID, "status": models.InvitationPending})
	if err != nil {
		return nil, err
	}

	invitations := []models.ProjectInvitation{}
	if err = cursor.All(ctx, &invitations); err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *InvitationRepo) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.collection().DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}

func (r *InvitationRepo) DeleteByProject(ctx context.Context, projectID string) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
