package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

func TestBlogLifecycle(t *testing.T) {
	blogs := newFakeBlogs()
	svc := NewBlogService(blogs)
	author := primitive.NewObjectID()
	ctx := context.Background()

	blog, err := svc.Create(ctx, author, "Coming out at work", "a long story about it", "")
	require.NoError(t, err)
	assert.Equal(t, author, blog.Author)
	assert.NotNil(t, blog.Upvotes)

	title := "Coming out at work, revisited"
	updated, err := svc.Update(ctx, author, blog.ID, BlogUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	_, err = svc.Update(ctx, primitive.NewObjectID(), blog.ID, BlogUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, svc.Delete(ctx, author, blog.ID))
	_, err = svc.Get(ctx, blog.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogVotesAreExclusive(t *testing.T) {
	blog := &models.Blog{ID: primitive.NewObjectID()}
	svc := NewBlogService(newFakeBlogs(blog))
	actor := primitive.NewObjectID()
	ctx := context.Background()

	count, err := svc.Upvote(ctx, blog.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = svc.Downvote(ctx, blog.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, blog.Upvotes)
	assert.Contains(t, blog.Downvotes, actor)

	count, err = svc.RemoveDownvote(ctx, blog.ID, actor)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.RemoveUpvote(ctx, blog.ID, actor)
	assert.ErrorIs(t, err, ErrNotInState)
}

func TestBlogsByAuthor(t *testing.T) {
	author := primitive.NewObjectID()
	mine := &models.Blog{ID: primitive.NewObjectID(), Author: author, Title: "mine"}
	other := &models.Blog{ID: primitive.NewObjectID(), Author: primitive.NewObjectID(), Title: "other"}
	svc := NewBlogService(newFakeBlogs(mine, other))

	blogs, err := svc.ByAuthor(context.Background(), author)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, "mine", blogs[0].Title)
}
