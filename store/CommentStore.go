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

type Comments struct {
	col *mongo.Collection
}

func NewComments(db *mongo.Database) *Comments {
	return &Comments{col: db.Collection("comments-collection")}
}

func (s *Comments) FindByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error) {
	var comment models.Comment
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Comment{}, services.ErrNotFound
	}
	if err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (s *Comments) FindByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	cursor, err := s.col.Find(ctx, bson.M{"postID": postID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	comments := []models.Comment{}
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Comments) Insert(ctx context.Context, comment models.Comment) error {
	_, err := s.col.InsertOne(ctx, comment)
	return err
}

func (s *Comments) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Comments) DeleteByPost(ctx context.Context, postID primitive.ObjectID) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"postID": postID})
	return err
}

func (s *Comments) Sets(ctx context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	comment, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string][]primitive.ObjectID{
		"likes":    comment.Likes,
		"dislikes": comment.Dislikes,
	}, nil
}

func (s *Comments) AddToSet(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Comments) Pull(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
