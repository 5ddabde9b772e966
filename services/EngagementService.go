package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EngagementSets exposes the reaction sets of one document collection.
// Sets returns every engagement field of the entity keyed by field name;
// AddToSet and Pull are atomic array updates on a single field.
type EngagementSets interface {
	Sets(ctx context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error)
	AddToSet(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error
	Pull(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error
}

// ToggleKind names an engagement set and, for mutually exclusive pairs,
// the set it displaces. A user holds at most one of a pair per entity.
type ToggleKind struct {
	Field    string
	Opposing string
}

var (
	PostLike       = ToggleKind{Field: "likes"}
	CommentLike    = ToggleKind{Field: "likes", Opposing: "dislikes"}
	CommentDislike = ToggleKind{Field: "dislikes", Opposing: "likes"}
	BlogUpvote     = ToggleKind{Field: "upvotes", Opposing: "downvotes"}
	BlogDownvote   = ToggleKind{Field: "downvotes", Opposing: "upvotes"}
	EventAttend    = ToggleKind{Field: "attendees"}
)

// ToggleOn adds actor to the kind's set, draining the opposing set first
// when the kind has one. Returns the new cardinality of the set.
//
// The membership check reads current state before the write, so two
// concurrent toggles may both pass the precondition; the write itself is
// an atomic array add and cannot drop a concurrent actor's entry.
func ToggleOn(ctx context.Context, docs EngagementSets, entityID, actorID primitive.ObjectID, kind ToggleKind) (int, error) {
	sets, err := docs.Sets(ctx, entityID)
	if err != nil {
		return 0, err
	}
	if containsID(sets[kind.Field], actorID) {
		return 0, ErrAlreadyInState
	}
	if kind.Opposing != "" && containsID(sets[kind.Opposing], actorID) {
		if err := docs.Pull(ctx, entityID, kind.Opposing, actorID); err != nil {
			return 0, storeErr("drain "+kind.Opposing, err)
		}
	}
	if err := docs.AddToSet(ctx, entityID, kind.Field, actorID); err != nil {
		return 0, storeErr("add to "+kind.Field, err)
	}
	return len(sets[kind.Field]) + 1, nil
}

// ToggleOff removes actor from the kind's set. The opposing set is never
// touched. Returns the new cardinality of the set.
func ToggleOff(ctx context.Context, docs EngagementSets, entityID, actorID primitive.ObjectID, kind ToggleKind) (int, error) {
	sets, err := docs.Sets(ctx, entityID)
	if err != nil {
		return 0, err
	}
	if !containsID(sets[kind.Field], actorID) {
		return 0, ErrNotInState
	}
	if err := docs.Pull(ctx, entityID, kind.Field, actorID); err != nil {
		return 0, storeErr("pull from "+kind.Field, err)
	}
	return len(sets[kind.Field]) - 1, nil
}

func containsID(set []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, member := range set {
		if member == id {
			return true
		}
	}
	return false
}
