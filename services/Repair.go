package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

// recordRepair emits the reconciliation record for the failed second
// write of a two-write sequence. A failure to write the record itself can
// only be logged; at that point there is no durable place left to put it.
func recordRepair(ctx context.Context, repair RepairLog, op string, docID primitive.ObjectID, field string, value primitive.ObjectID, cause error) {
	rec := models.RepairRecord{
		ID:         primitive.NewObjectID(),
		Op:         op,
		DocumentID: docID,
		Field:      field,
		Value:      value,
		Reason:     cause.Error(),
		CreatedAt:  time.Now(),
	}
	if err := repair.Record(ctx, rec); err != nil {
		log.Printf("repair record lost (op=%s doc=%s field=%s): %v", op, docID.Hex(), field, err)
	}
}
