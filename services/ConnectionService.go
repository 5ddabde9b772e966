package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

// ConnectionService manages the bidirectional follow edge between two
// user documents. The edge is stored redundantly on both sides, so every
// follow and unfollow is a pair of sequential writes with no rollback;
// a failed second write is logged for reconciliation and surfaced as a
// StoreError naming the half that succeeded.
type ConnectionService struct {
	users  UserDocs
	repair RepairLog
}

func NewConnectionService(users UserDocs, repair RepairLog) *ConnectionService {
	return &ConnectionService{users: users, repair: repair}
}

func (s *ConnectionService) Follow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	if followerID == targetID {
		return ErrSelfReference
	}
	follower, err := s.users.FindByID(ctx, followerID)
	if err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}
	if containsID(follower.Following, targetID) {
		return ErrAlreadyFollowing
	}

	if err := s.users.AddToSet(ctx, followerID, "following", targetID); err != nil {
		return storeErr("follow: write following", err)
	}
	if err := s.users.AddToSet(ctx, targetID, "followers", followerID); err != nil {
		recordRepair(ctx, s.repair, "follow", targetID, "followers", followerID, err)
		return storeErr("follow: following written, followers write failed", err)
	}
	return nil
}

func (s *ConnectionService) Unfollow(ctx context.Context, followerID, targetID primitive.ObjectID) error {
	if followerID == targetID {
		return ErrSelfReference
	}
	follower, err := s.users.FindByID(ctx, followerID)
	if err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return err
	}
	if !containsID(follower.Following, targetID) {
		return ErrNotFollowing
	}

	if err := s.users.Pull(ctx, followerID, "following", targetID); err != nil {
		return storeErr("unfollow: remove following", err)
	}
	if err := s.users.Pull(ctx, targetID, "followers", followerID); err != nil {
		recordRepair(ctx, s.repair, "unfollow", targetID, "followers", followerID, err)
		return storeErr("unfollow: following removed, followers write failed", err)
	}
	return nil
}

// Followers resolves a user's follower id list to full user documents.
func (s *ConnectionService) Followers(ctx context.Context, userID primitive.ObjectID) ([]models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByIDs(ctx, user.Followers)
}

func (s *ConnectionService) Following(ctx context.Context, userID primitive.ObjectID) ([]models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.users.FindByIDs(ctx, user.Following)
}
