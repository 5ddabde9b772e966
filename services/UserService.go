package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"pridehub/models"
)

// VerificationMailer delivers signup verification mail. Delivery is
// fire-and-forget and never gates the request path.
type VerificationMailer interface {
	SendVerificationEmail(to, name, token string) error
}

type UserService struct {
	users  UserDocs
	mailer VerificationMailer
}

func NewUserService(users UserDocs, mailer VerificationMailer) *UserService {
	return &UserService{users: users, mailer: mailer}
}

// Register stores a new user with a hashed password and mails out an
// email-verification token. Email and username must be unused.
func (s *UserService) Register(ctx context.Context, user models.User) (models.User, error) {
	if _, err := s.users.FindByEmail(ctx, user.Email); err == nil {
		return models.User{}, ErrDuplicate
	}
	if _, err := s.users.FindByUsername(ctx, user.Username); err == nil {
		return models.User{}, ErrDuplicate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashed)

	user.ID = primitive.NewObjectID()
	user.VerifyToken = uuid.NewString()
	user.Followers = []primitive.ObjectID{}
	user.Following = []primitive.ObjectID{}
	user.Posts = []models.PostSummary{}
	user.CreationDate = time.Now()

	if err := s.users.Insert(ctx, user); err != nil {
		return models.User{}, storeErr("insert user", err)
	}

	go func(to, name, token string) {
		if err := s.mailer.SendVerificationEmail(to, name, token); err != nil {
			log.Printf("verification mail to %s failed: %v", to, err)
		}
	}(user.Email, user.Name, user.VerifyToken)

	return user, nil
}

// Login checks credentials and returns the matching user. Token issuance
// stays at the HTTP boundary.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrBadCredentials
	}
	return user, nil
}

// VerifyEmail redeems a verification token.
func (s *UserService) VerifyEmail(ctx context.Context, token string) (models.User, error) {
	user, err := s.users.FindByVerifyToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}
	if err := s.users.SetEmailVerified(ctx, user.ID); err != nil {
		return models.User{}, storeErr("mark email verified", err)
	}
	user.IsEmailVerified = true
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile applies the provided optional fields. A changed username
// must be unused by anyone else.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update ProfileUpdate) (models.User, error) {
	if update.Username != nil {
		existing, err := s.users.FindByUsername(ctx, *update.Username)
		if err == nil && existing.ID != id {
			return models.User{}, ErrDuplicate
		}
	}
	return s.users.UpdateProfile(ctx, id, update)
}

// SearchByUsername looks a user up by username and reports whether the
// acting user already follows them.
func (s *UserService) SearchByUsername(ctx context.Context, actorID primitive.ObjectID, username string) (models.User, bool, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return models.User{}, false, err
	}
	target, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return models.User{}, false, err
	}
	return target, containsID(actor.Following, target.ID), nil
}
