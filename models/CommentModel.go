package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Comment struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id"`
	UserID       primitive.ObjectID   `json:"userID" bson:"userID"`
	PostID       primitive.ObjectID   `json:"postID" bson:"postID"`
	Text         string               `json:"text" bson:"text" validate:"required"`
	Likes        []primitive.ObjectID `json:"likes" bson:"likes"`
	Dislikes     []primitive.ObjectID `json:"dislikes" bson:"dislikes"`
	CreationDate time.Time            `json:"creationDate" bson:"creationDate"`
}

func (c Comment) OwnerID() primitive.ObjectID { return c.UserID }
