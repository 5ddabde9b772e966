package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

func TestCreateCommentBackreferencesPost(t *testing.T) {
	post := &models.Post{ID: primitive.NewObjectID()}
	posts := newFakePosts(post)
	comments := newFakeComments()
	svc := NewCommentService(comments, posts, &fakeRepair{})
	actor := primitive.NewObjectID()

	comment, err := svc.Create(context.Background(), actor, post.ID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, actor, comment.UserID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Contains(t, post.Comments, comment.ID)
}

func TestCreateCommentUnknownPost(t *testing.T) {
	svc := NewCommentService(newFakeComments(), newFakePosts(), &fakeRepair{})

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), "text")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCommentBackrefFailureLogsRepair(t *testing.T) {
	post := &models.Post{ID: primitive.NewObjectID()}
	posts := newFakePosts(post)
	posts.fail["PushComment"] = errors.New("write timeout")
	repair := &fakeRepair{}
	svc := NewCommentService(newFakeComments(), posts, repair)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), post.ID, "text")

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Contains(t, storeErr.Op, "comment inserted")
	require.Len(t, repair.records, 1)
	assert.Equal(t, "comment create", repair.records[0].Op)
}

func TestDeleteCommentPullsFromPost(t *testing.T) {
	actor := primitive.NewObjectID()
	comment := &models.Comment{ID: primitive.NewObjectID(), UserID: actor, PostID: primitive.NewObjectID()}
	post := &models.Post{ID: comment.PostID, Comments: []primitive.ObjectID{comment.ID}}
	posts := newFakePosts(post)
	comments := newFakeComments(comment)
	svc := NewCommentService(comments, posts, &fakeRepair{})

	require.NoError(t, svc.Delete(context.Background(), actor, comment.ID))

	assert.Empty(t, post.Comments)
	_, err := comments.FindByID(context.Background(), comment.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCommentRequiresOwner(t *testing.T) {
	comment := &models.Comment{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), PostID: primitive.NewObjectID()}
	svc := NewCommentService(newFakeComments(comment), newFakePosts(&models.Post{ID: comment.PostID}), &fakeRepair{})

	err := svc.Delete(context.Background(), primitive.NewObjectID(), comment.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCommentReactionsAreExclusive(t *testing.T) {
	comment := &models.Comment{ID: primitive.NewObjectID()}
	svc := NewCommentService(newFakeComments(comment), newFakePosts(), &fakeRepair{})
	actor := primitive.NewObjectID()
	ctx := context.Background()

	count, err := svc.Like(ctx, comment.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// switching sides drains the like
	count, err = svc.Dislike(ctx, comment.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, comment.Likes)
	assert.Contains(t, comment.Dislikes, actor)

	_, err = svc.Unlike(ctx, comment.ID, actor)
	assert.ErrorIs(t, err, ErrNotInState)

	count, err = svc.Undislike(ctx, comment.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCommentsByPost(t *testing.T) {
	post := &models.Post{ID: primitive.NewObjectID()}
	mine := &models.Comment{ID: primitive.NewObjectID(), PostID: post.ID, Text: "mine"}
	other := &models.Comment{ID: primitive.NewObjectID(), PostID: primitive.NewObjectID(), Text: "other"}
	svc := NewCommentService(newFakeComments(mine, other), newFakePosts(post), &fakeRepair{})

	comments, err := svc.ByPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "mine", comments[0].Text)
}
