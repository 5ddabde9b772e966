package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// PostSummary is the denormalized snapshot of a post kept on its author's
// user document, updated alongside the posts collection.
type PostSummary struct {
	PostID       primitive.ObjectID   `json:"postID" bson:"postID"`
	Text         string               `json:"text" bson:"text"`
	ImageURL     string               `json:"imageURL" bson:"imageURL"`
	Likes        []primitive.ObjectID `json:"likes" bson:"likes"`
	Comments     []primitive.ObjectID `json:"comments" bson:"comments"`
	CreationDate time.Time            `json:"creationDate" bson:"creationDate"`
}

type User struct {
	ID              primitive.ObjectID   `json:"_id" bson:"_id"`
	Name            string               `json:"name" bson:"name" validate:"required"`
	Username        string               `json:"username" bson:"username" validate:"required,min=3,max=20"`
	Email           string               `json:"email" bson:"email" validate:"required,email"`
	Password        string               `json:"password,omitempty" bson:"password" validate:"required,min=8"`
	IsEmailVerified bool                 `json:"isEmailVerified" bson:"isEmailVerified"`
	VerifyToken     string               `json:"-" bson:"verifyToken,omitempty"`
	Gender          string               `json:"gender" bson:"gender" validate:"required"`
	Country         string               `json:"country" bson:"country"`
	DOB             string               `json:"dob" bson:"dob"`
	Bio             string               `json:"bio" bson:"bio" validate:"max=200"`
	ProfileImageURL string               `json:"profileImageURL" bson:"profileImageURL"`
	CoverImageURL   string               `json:"coverImageURL" bson:"coverImageURL"`
	Followers       []primitive.ObjectID `json:"followers" bson:"followers"`
	Following       []primitive.ObjectID `json:"following" bson:"following"`
	Posts           []PostSummary        `json:"posts" bson:"posts"`
	IsPrivate       bool                 `json:"isPrivate" bson:"isPrivate"`
	CreationDate    time.Time            `json:"creationDate" bson:"creationDate"`
}
