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

type Posts struct {
	col *mongo.Collection
}

func NewPosts(db *mongo.Database) *Posts {
	return &Posts{col: db.Collection("posts-collection")}
}

func (s *Posts) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	var post models.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Post{}, services.ErrNotFound
	}
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (s *Posts) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	cursor, err := s.col.Find(ctx, bson.M{"userID": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Posts) All(ctx context.Context) ([]models.Post, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *Posts) Insert(ctx context.Context, post models.Post) error {
	_, err := s.col.InsertOne(ctx, post)
	return err
}

func (s *Posts) SetText(ctx context.Context, id primitive.ObjectID, text string) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"text": text}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Posts) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Posts) PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$push": bson.M{"comments": commentID}})
	return err
}

func (s *Posts) PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$pull": bson.M{"comments": commentID}})
	return err
}

func (s *Posts) Sets(ctx context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	post, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string][]primitive.ObjectID{"likes": post.Likes}, nil
}

func (s *Posts) AddToSet(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Posts) Pull(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
