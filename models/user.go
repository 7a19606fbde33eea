package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	Surname     string             `bson:"surname" json:"surname"`
	Telephone   string             `bson:"telephone" json:"telephone"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	Connections []string           `bson:"connections" json:"connections"`
}

func NewUser(firstName, surname, telephone, email, password string) User {
	return User{
		FirstName:   firstName,
		Surname:     surname,
		Telephone:   telephone,
		Email:       email,
		Password:    password,
		IsActive:    true,
		Connections: []string{},
	}
}
