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

type Events struct {
	col *mongo.Collection
}

func NewEvents(db *mongo.Database) *Events {
	return &Events{col: db.Collection("events-collection")}
}

func (s *Events) FindByID(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	var event models.Event
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Event{}, services.ErrNotFound
	}
	if err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *Events) FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.Event, error) {
	cursor, err := s.col.Find(ctx, bson.M{"creator": creatorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Events) All(ctx context.Context) ([]models.Event, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Events) Insert(ctx context.Context, event models.Event) error {
	_, err := s.col.InsertOne(ctx, event)
	return err
}

func (s *Events) Update(ctx context.Context, id primitive.ObjectID, update services.EventUpdate) (models.Event, error) {
	set := bson.M{}
	setString := func(field string, v *string) {
		if v != nil {
			set[field] = *v
		}
	}
	setString("title", update.Title)
	setString("description", update.Description)
	setString("location", update.Location)
	setString("meetingURL", update.MeetingURL)
	setString("imageURL", update.ImageURL)
	setString("startDate", update.StartDate)
	setString("startTime", update.StartTime)
	setString("endDate", update.EndDate)
	setString("endTime", update.EndTime)
	if len(set) > 0 {
		if _, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return models.Event{}, err
		}
	}
	return s.FindByID(ctx, id)
}

func (s *Events) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Events) Sets(ctx context.Context, id primitive.ObjectID) (map[string][]primitive.ObjectID, error) {
	event, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return map[string][]primitive.ObjectID{"attendees": event.Attendees}, nil
}

func (s *Events) AddToSet(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$addToSet": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

func (s *Events) Pull(ctx context.Context, id primitive.ObjectID, field string, actor primitive.ObjectID) error {
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$pull": bson.M{field: actor}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
