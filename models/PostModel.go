package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Post struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id"`
	UserID       primitive.ObjectID   `json:"userID" bson:"userID"`
	Text         string               `json:"text" bson:"text"`
	ImageURL     string               `json:"imageURL" bson:"imageURL"`
	Likes        []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments     []primitive.ObjectID `json:"comments" bson:"comments"`
	CreationDate time.Time            `json:"creationDate" bson:"creationDate"`
}

func (p Post) OwnerID() primitive.ObjectID { return p.UserID }
