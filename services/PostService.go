package services

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

// PostService owns the posts collection and the denormalized post
// summaries on user documents. Creates and deletes are two-write
// sequences: the posts collection first, then the author's document.
type PostService struct {
	posts    PostDocs
	comments CommentDocs
	users    UserDocs
	repair   RepairLog
}

func NewPostService(posts PostDocs, comments CommentDocs, users UserDocs, repair RepairLog) *PostService {
	return &PostService{posts: posts, comments: comments, users: users, repair: repair}
}

func (s *PostService) Create(ctx context.Context, userID primitive.ObjectID, text, imageURL string) (models.Post, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:           primitive.NewObjectID(),
		UserID:       userID,
		Text:         text,
		ImageURL:     imageURL,
		Likes:        []primitive.ObjectID{},
		Comments:     []primitive.ObjectID{},
		CreationDate: time.Now(),
	}
	if err := s.posts.Insert(ctx, post); err != nil {
		return models.Post{}, storeErr("insert post", err)
	}

	summary := models.PostSummary{
		PostID:       post.ID,
		Text:         post.Text,
		ImageURL:     post.ImageURL,
		Likes:        post.Likes,
		Comments:     post.Comments,
		CreationDate: post.CreationDate,
	}
	if err := s.users.PushPostSummary(ctx, userID, summary); err != nil {
		recordRepair(ctx, s.repair, "post create", userID, "posts", post.ID, err)
		return models.Post{}, storeErr("post create: post inserted, summary write failed", err)
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// ByUser lists a user's posts, newest first.
func (s *PostService) ByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	posts, err := s.posts.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("find posts by user", err)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreationDate.After(posts[j].CreationDate)
	})
	return posts, nil
}

func (s *PostService) UpdateText(ctx context.Context, actorID, postID primitive.ObjectID, text string) (models.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if err := AssertOwner(actorID, post); err != nil {
		return models.Post{}, err
	}
	if err := s.posts.SetText(ctx, postID, text); err != nil {
		return models.Post{}, storeErr("update post text", err)
	}
	post.Text = text
	return post, nil
}

// Delete removes a post and cascade-cleans its back-references: the
// post's comments and the summary on the author's document.
func (s *PostService) Delete(ctx context.Context, actorID, postID primitive.ObjectID) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := AssertOwner(actorID, post); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, postID); err != nil {
		return storeErr("delete post", err)
	}
	if err := s.comments.DeleteByPost(ctx, postID); err != nil {
		recordRepair(ctx, s.repair, "post delete", postID, "comments", postID, err)
		return storeErr("post delete: post removed, comment cleanup failed", err)
	}
	if err := s.users.PullPostSummary(ctx, post.UserID, postID); err != nil {
		recordRepair(ctx, s.repair, "post delete", post.UserID, "posts", postID, err)
		return storeErr("post delete: post removed, summary cleanup failed", err)
	}
	return nil
}

func (s *PostService) Like(ctx context.Context, postID, actorID primitive.ObjectID) (int, error) {
	return ToggleOn(ctx, s.posts, postID, actorID, PostLike)
}

func (s *PostService) Unlike(ctx context.Context, postID, actorID primitive.ObjectID) (int, error) {
	return ToggleOff(ctx, s.posts, postID, actorID, PostLike)
}
