package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

func TestAssertOwner(t *testing.T) {
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	resources := []Owned{
		models.Post{UserID: owner},
		models.Comment{UserID: owner},
		models.Blog{Author: owner},
		models.Event{Creator: owner},
	}

	for _, r := range resources {
		assert.NoError(t, AssertOwner(owner, r))
		assert.ErrorIs(t, AssertOwner(stranger, r), ErrForbidden)
	}
}
