package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

type CommentService struct {
	comments CommentDocs
	posts    PostDocs
	repair   RepairLog
}

func NewCommentService(comments CommentDocs, posts PostDocs, repair RepairLog) *CommentService {
	return &CommentService{comments: comments, posts: posts, repair: repair}
}

// Create stores a comment and appends its id to the parent post's
// comment list, a two-write sequence covered by the repair log.
func (s *CommentService) Create(ctx context.Context, actorID, postID primitive.ObjectID, text string) (models.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		ID:           primitive.NewObjectID(),
		UserID:       actorID,
		PostID:       postID,
		Text:         text,
		Likes:        []primitive.ObjectID{},
		Dislikes:     []primitive.ObjectID{},
		CreationDate: time.Now(),
	}
	if err := s.comments.Insert(ctx, comment); err != nil {
		return models.Comment{}, storeErr("insert comment", err)
	}
	if err := s.posts.PushComment(ctx, postID, comment.ID); err != nil {
		recordRepair(ctx, s.repair, "comment create", postID, "comments", comment.ID, err)
		return models.Comment{}, storeErr("comment create: comment inserted, post update failed", err)
	}
	return comment, nil
}

func (s *CommentService) ByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.FindByPost(ctx, postID)
	if err != nil {
		return nil, storeErr("find comments by post", err)
	}
	return comments, nil
}

// Delete removes a comment and pulls its id from the parent post.
func (s *CommentService) Delete(ctx context.Context, actorID, commentID primitive.ObjectID) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := AssertOwner(actorID, comment); err != nil {
		return err
	}
	if err := s.posts.PullComment(ctx, comment.PostID, commentID); err != nil {
		return storeErr("comment delete: pull from post", err)
	}
	if err := s.comments.Delete(ctx, commentID); err != nil {
		recordRepair(ctx, s.repair, "comment delete", commentID, "comment", commentID, err)
		return storeErr("comment delete: post updated, comment removal failed", err)
	}
	return nil
}

func (s *CommentService) Like(ctx context.Context, commentID, actorID primitive.ObjectID) (int, error) {
	return ToggleOn(ctx, s.comments, commentID, actorID, CommentLike)
}

func (s *CommentService) Unlike(ctx context.Context, commentID, actorID primitive.ObjectID) (int, error) {
	return ToggleOff(ctx, s.comments, commentID, actorID, CommentLike)
}

func (s *CommentService) Dislike(ctx context.Context, commentID, actorID primitive.ObjectID) (int, error) {
	return ToggleOn(ctx, s.comments, commentID, actorID, CommentDislike)
}

func (s *CommentService) Undislike(ctx context.Context, commentID, actorID primitive.ObjectID) (int, error) {
	return ToggleOff(ctx, s.comments, commentID, actorID, CommentDislike)
}
