package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pridehub/models"
	"pridehub/services"
)

type Blogs struct {
	col *mongo.Collection
}

func NewBlogs(db *mongo.Database) *Blogs {
	return &Blogs{col: db.Collection("blogs-collection")}
}

func (s *Blogs) FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error) {
	var blog models.Blog
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&blog)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Blog{}, services.ErrNotFound
	}
	if err != nil {
		return models.Blog{}, err
	}
	return blog, nil
}

func (s *Blogs) FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Blog, error) {
	cursor, err := s.col.Find(ctx, bson.M{"author": authorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *Blogs) All(ctx context.Context) ([]models.Blog, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	blogs := []models.Blog{}
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *Blogs) Insert(ctx context.Context, blog models.Blog) error {
	_, err := s.col.InsertOne(ctx, blog)
	return err
}

func (s *Blogs) Update(ctx context.Context, id primitive.ObjectID, update services.BlogUpdate) (models.Blog, error) {
	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.ImageURL != nil {
		set["imageURL"] = *update.ImageURL
	}
	if len(set) > 0 {
		if _, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return models.Blog{}, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *Blogs) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Blogs) Sets(ctx context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	blog, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string][]primitive.ObjectID{
		"upvotes":   blog.Upvotes,
		"downvotes": blog.Downvotes,
	}, nil
}

func (s *Blogs) AddToSet(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Blogs) Pull(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
