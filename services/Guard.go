package services

import "go.mongodb.org/mongo-driver/bson/primitive"

// Owned is any document with a single owning user for mutation purposes.
type Owned interface {
	OwnerID() primitive.ObjectID
}

// AssertOwner rejects mutation of a resource by anyone but its owner.
func AssertOwner(actorID primitive.ObjectID, resource Owned) error {
	if resource.OwnerID() != actorID {
		return ErrForbidden
	}
	return nil
}
