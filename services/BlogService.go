package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

type BlogService struct {
	blogs BlogDocs
}

func NewBlogService(blogs BlogDocs) *BlogService {
	return &BlogService{blogs: blogs}
}

func (s *BlogService) Create(ctx context.Context, authorID primitive.ObjectID, title, content, imageURL string) (models.Blog, error) {
	blog := models.Blog{
		ID:           primitive.NewObjectID(),
		Author:       authorID,
		Title:        title,
		Content:      content,
		ImageURL:     imageURL,
		Upvotes:      []primitive.ObjectID{},
		Downvotes:    []primitive.ObjectID{},
		CreationDate: time.Now(),
	}
	if err := s.blogs.Insert(ctx, blog); err != nil {
		return models.Blog{}, storeErr("insert blog", err)
	}
	return blog, nil
}

func (s *BlogService) Get(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	return s.blogs.FindByID(ctx, id)
}

func (s *BlogService) ByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Blog, error) {
	blogs, err := s.blogs.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, storeErr("find blogs by author", err)
	}
	return blogs, nil
}

func (s *BlogService) Update(ctx context.Context, actorID, blogID primitive.ObjectID, update BlogUpdate) (models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return models.Blog{}, err
	}
	if err := AssertOwner(actorID, blog); err != nil {
		return models.Blog{}, err
	}
	return s.blogs.Update(ctx, blogID, update)
}

func (s *BlogService) Delete(ctx context.Context, actorID, blogID primitive.ObjectID) error {
	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return err
	}
	if err := AssertOwner(actorID, blog); err != nil {
		return err
	}
	if err := s.blogs.Delete(ctx, blogID); err != nil {
		return storeErr("delete blog", err)
	}
	return nil
}

func (s *BlogService) Upvote(ctx context.Context, blogID, actorID primitive.ObjectID) (int, error) {
	return ToggleOn(ctx, s.blogs, blogID, actorID, BlogUpvote)
}

func (s *BlogService) RemoveUpvote(ctx context.Context, blogID, actorID primitive.ObjectID) (int, error) {
	return ToggleOff(ctx, s.blogs, blogID, actorID, BlogUpvote)
}

func (s *BlogService) Downvote(ctx context.Context, blogID, actorID primitive.ObjectID) (int, error) {
	return ToggleOn(ctx, s.blogs, blogID, actorID, BlogDownvote)
}

func (s *BlogService) RemoveDownvote(ctx context.Context, blogID, actorID primitive.ObjectID) (int, error) {
	return ToggleOff(ctx, s.blogs, blogID, actorID, BlogDownvote)
}
