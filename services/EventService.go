package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

type EventService struct {
	events EventDocs
}

func NewEventService(events EventDocs) *EventService {
	return &EventService{events: events}
}

func (s *EventService) Create(ctx context.Context, creatorID primitive.ObjectID, event models.Event) (models.Event, error) {
	if err := ValidateEventWindow(event.StartDate, event.StartTime, event.EndDate, event.EndTime); err != nil {
		return models.Event{}, err
	}
	event.ID = primitive.NewObjectID()
	event.Creator = creatorID
	event.Attendees = []primitive.ObjectID{}
	event.CreationDate = time.Now()
	if err := s.events.Insert(ctx, event); err != nil {
		return models.Event{}, storeErr("insert event", err)
	}
	return event, nil
}

func (s *EventService) Get(ctx context.Context, id primitive.ObjectID) (models.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) ByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.Event, error) {
	events, err := s.events.FindByCreator(ctx, creatorID)
	if err != nil {
		return nil, storeErr("find events by creator", err)
	}
	return events, nil
}

// Update applies the provided fields; the resulting date/time window must
// still be valid.
func (s *EventService) Update(ctx context.Context, actorID, eventID primitive.ObjectID, update EventUpdate) (models.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return models.Event{}, err
	}
	if err := AssertOwner(actorID, event); err != nil {
		return models.Event{}, err
	}

	merged := event
	if update.StartDate != nil {
		merged.StartDate = *update.StartDate
	}
	if update.StartTime != nil {
		merged.StartTime = *update.StartTime
	}
	if update.EndDate != nil {
		merged.EndDate = *update.EndDate
	}
	if update.EndTime != nil {
		merged.EndTime = *update.EndTime
	}
	if err := ValidateEventWindow(merged.StartDate, merged.StartTime, merged.EndDate, merged.EndTime); err != nil {
		return models.Event{}, err
	}

	return s.events.Update(ctx, eventID, update)
}

func (s *EventService) Delete(ctx context.Context, actorID, eventID primitive.ObjectID) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := AssertOwner(actorID, event); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, eventID); err != nil {
		return storeErr("delete event", err)
	}
	return nil
}

// ByPhase lists events in one temporal bucket relative to now.
func (s *EventService) ByPhase(ctx context.Context, phase EventPhase, now time.Time) ([]models.Event, error) {
	events, err := s.events.All(ctx)
	if err != nil {
		return nil, storeErr("list events", err)
	}
	return FilterEventsByPhase(events, phase, now), nil
}

func (s *EventService) Register(ctx context.Context, eventID, actorID primitive.ObjectID) (int, error) {
	return ToggleOn(ctx, s.events, eventID, actorID, EventAttend)
}

func (s *EventService) Unregister(ctx context.Context, eventID, actorID primitive.ObjectID) (int, error) {
	return ToggleOff(ctx, s.events, eventID, actorID, EventAttend)
}
