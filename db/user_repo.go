package db

import (
	"context"

	"collab-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	cli *mongo.Client
}

func NewUserRepo(client *mongo.Client) *UserRepo {
	return &UserRepo{cli: client}
}

func (r *UserRepo) collection() *mongo.Collection {
	return r.cli.Database(Database).Collection("users")
}

func (r *UserRepo) Insert(ctx context.Context, user models.User) (string, error) {
	res, err := r.collection().InsertOne(ctx, user)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (models.User, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, false, nil
	}

	var user models.User
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	var user models.User
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (r *UserRepo) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) UpdateSettings(ctx context.Context, id, firstName, surname, telephone string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"firstName": firstName,
		"surname":   surname,
		"telephone": telephone,
	}}
	_, err = r.collection().UpdateOne(ctx, bson.M{"_id": objectID}, update)
	return err
}

func (r *UserRepo) AddConnection(ctx context.Context, userID, otherID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	_, err = r.collection().UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$addToSet": bson.M{"connections": otherID}},
	)
	return err
}

func (r *UserRepo) RemoveConnection(ctx context.Context, userID, otherID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	_, err = r.collection().UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$pull": bson.M{"connections": otherID}},
	)
	return err
}
