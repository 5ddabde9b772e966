package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// RepairRecord captures the second half of a two-write sequence that
// failed after the first write succeeded. A reconciliation job replays
// these to restore symmetric state; the backend only emits them.
type RepairRecord struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Op         string             `json:"op" bson:"op"`
	DocumentID primitive.ObjectID `json:"documentID" bson:"documentID"`
	Field      string             `json:"field" bson:"field"`
	Value      primitive.ObjectID `json:"value" bson:"value"`
	Reason     string             `json:"reason" bson:"reason"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
