package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// Event dates and times are stored as separate canonical strings
// (YYYY-MM-DD and 24-hour HH:MM), not a combined timestamp. The stored
// format is load-bearing: classification compares these lexicographically.
type Event struct {
	ID           primitive.ObjectID   `json:"_id" bson:"_id"`
	Creator      primitive.ObjectID   `json:"creator" bson:"creator"`
	Title        string               `json:"title" bson:"title" validate:"required"`
	Description  string               `json:"description" bson:"description" validate:"required"`
	IsOnline     bool                 `json:"isOnline" bson:"isOnline"`
	Location     string               `json:"location" bson:"location"`
	MeetingURL   string               `json:"meetingURL" bson:"meetingURL"`
	StartDate    string               `json:"startDate" bson:"startDate" validate:"required"`
	StartTime    string               `json:"startTime" bson:"startTime" validate:"required"`
	EndDate      string               `json:"endDate" bson:"endDate" validate:"required"`
	EndTime      string               `json:"endTime" bson:"endTime" validate:"required"`
	ImageURL     string               `json:"imageURL" bson:"imageURL"`
	Attendees    []primitive.ObjectID `json:"attendees" bson:"attendees"`
	CreationDate time.Time            `json:"creationDate" bson:"creationDate"`
}

func (e Event) OwnerID() primitive.ObjectID { return e.Creator }
