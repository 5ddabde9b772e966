package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pridehub/models"
)

// Store contracts the core depends on, one per document collection. The
// mongo-backed implementations live in the store package; tests
// substitute in-memory fakes. Lookups return ErrNotFound when the id does
// not resolve to a document.

type UserDocs interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByVerifyToken(ctx context.Context, token string) (models.User, error)
	All(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user models.User) error
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (models.User, error)
	SetEmailVerified(ctx context.Context, id primitive.ObjectID) error
	AddToSet(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error
	Pull(ctx context.Context, id primitive.ObjectID, field string, value primitive.ObjectID) error
	PushPostSummary(ctx context.Context, userID primitive.ObjectID, summary models.PostSummary) error
	PullPostSummary(ctx context.Context, userID, postID primitive.ObjectID) error
}

type PostDocs interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error)
	All(ctx context.Context) ([]models.Post, error)
	Insert(ctx context.Context, post models.Post) error
	SetText(ctx context.Context, id primitive.ObjectID, text string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	PullComment(ctx context.Context, postID, commentID primitive.ObjectID) error
	EngagementSets
}

type CommentDocs interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Comment, error)
	FindByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
	Insert(ctx context.Context, comment models.Comment) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByPost(ctx context.Context, postID primitive.ObjectID) error
	EngagementSets
}

type BlogDocs interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Blog, error)
	FindByAuthor(ctx context.Context, authorID primitive.ObjectID) ([]models.Blog, error)
	All(ctx context.Context) ([]models.Blog, error)
	Insert(ctx context.Context, blog models.Blog) error
	Update(ctx context.Context, id primitive.ObjectID, update BlogUpdate) (models.Blog, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	EngagementSets
}

type EventDocs interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Event, error)
	FindByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]models.Event, error)
	All(ctx context.Context) ([]models.Event, error)
	Insert(ctx context.Context, event models.Event) error
	Update(ctx context.Context, id primitive.ObjectID, update EventUpdate) (models.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	EngagementSets
}

// RepairLog receives records for failed second writes (see StoreError).
type RepairLog interface {
	Record(ctx context.Context, rec models.RepairRecord) error
}

// ProfileUpdate carries the optional profile fields of a user. Nil means
// "leave unchanged"; a pointer to the empty string clears the field, the
// way the image and bio fields behave.
type ProfileUpdate struct {
	Name            *string
	Username        *string
	Bio             *string
	ProfileImageURL *string
	CoverImageURL   *string
	Country         *string
	DOB             *string
	IsPrivate       *bool
}

type BlogUpdate struct {
	Title    *string
	Content  *string
	ImageURL *string
}

type EventUpdate struct {
	Title       *string
	Description *string
	Location    *string
	MeetingURL  *string
	ImageURL    *string
	StartDate   *string
	StartTime   *string
	EndDate     *string
	EndTime     *string
}
