package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Milestone struct {
	Name string `bson:"name" json:"name"`
	Done bool   `bson:"done" json:"done"`
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID   string             `bson:"project_id" json:"project_id"`
	Description string             `bson:"description" json:"description"`
	Milestones  []Milestone        `bson:"milestones" json:"milestones"`
	Completed   bool               `bson:"completed" json:"completed"`
}
