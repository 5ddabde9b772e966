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

type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("user-collection")}
}

func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *Users) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *Users) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *Users) FindByVerifyToken(ctx context.Context, token string) (models.User, error) {
	return s.findOne(ctx, bson.M{"verifyToken": token})
}

func (s *Users) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, services.ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindByIDs resolves an id list in one $in query. The result order is
// storage order, not input order.
func (s *Users) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) Insert(ctx context.Context, user models.User) error {
	_, err := s.col.InsertOne(ctx, user)
	return err
}

func (s *Users) UpdateProfile(ctx context.Context, id primitive.ObjectID, update services.ProfileUpdate) (models.User, error) {
	set := bson.M{}
	setString := func(field string, v *string) {
		if v != nil {
			set[field] = *v
		}
	}
	setString("name", update.Name)
	setString("username", update.Username)
	setString("bio", update.Bio)
	setString("profileImageURL", update.ProfileImageURL)
	setString("coverImageURL", update.CoverImageURL)
	setString("country", update.Country)
	setString("dob", update.DOB)
	if update.IsPrivate != nil {
		set["isPrivate"] = *update.IsPrivate
	}
	if len(set) > 0 {
		if _, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return models.User{}, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *Users) SetEmailVerified(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{
		"$set":   bson.M{"isEmailVerified": true},
		"$unset": bson.M{"verifyToken": ""},
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (s *Users) AddToSet(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: value}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Users) Pull(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: value}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Users) PushPostSummary(ctx context.Context, userID primitive.ObjectID, summary models.PostSummary) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$push": bson.M{"posts": summary}})
	return err
}

func (s *Users) PullPostSummary(ctx context.Context, userID, postID primitive.ObjectID) error {
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$pull": bson.M{"posts": bson.M{"postID": postID}}})
	return err
}
