package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Blog struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id"`
	Author       primitive.ObjectID   `json:"author" bson:"author"`
	Title        string               `json:"title" bson:"title" validate:"required,min=5"`
	Content      string               `json:"content" bson:"content" validate:"required,min=10"`
	ImageURL     string               `json:"imageURL" bson:"imageURL"`
	Upvotes      []primitive.ObjectID `json:"upvotes" bson:"upvotes"`
	Downvotes    []primitive.ObjectID `json:"downvotes" bson:"downvotes"`
	CreationDate time.Time            `json:"creationDate" bson:"creationDate"`
}

func (b Blog) OwnerID() primitive.ObjectID { return b.Author }
