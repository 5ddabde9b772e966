package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"pridehub/models"
)

// Repairs is the append-only log of failed second writes. A separate
// reconciliation job consumes it; the backend only appends.
type Repairs struct {
	col *mongo.Collection
}

func NewRepairs(db *mongo.Database) *Repairs {
	return &Repairs{col: db.Collection("repair-collection")}
}

func (s *Repairs) Record(ctx context.Context, rec models.RepairRecord) error {
	_, err := s.col.InsertOne(ctx, rec)
	return err
}
