package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wellpath/wellness/internal/core/domain"
)

const usersCollection = "users"

// UserStore implements ports.UserStore on a MongoDB collection keyed by the
// client-generated user id.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID               string   `bson:"_id"`
	Name             string   `bson:"name,omitempty"`
	Email            string   `bson:"email"`
	PasswordHash     string   `bson:"password_hash,omitempty"`
	NeedsOnboarding  bool     `bson:"needs_onboarding"`
	HealthGoals      []string `bson:"health_goals,omitempty"`
	HealthChallenges string   `bson:"health_challenges,omitempty"`
	ActivityLevel    string   `bson:"activity_level,omitempty"`
	Age              int      `bson:"age,omitempty"`
	Height           float64  `bson:"height,omitempty"`
	Weight           float64  `bson:"weight,omitempty"`
	CreatedAt        int64    `bson:"created_at"`
	UpdatedAt        int64    `bson:"updated_at"`
}

func (r *UserStore) InsertUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(user)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserStore) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := updateFields(upd)
	set["updated_at"] = time.Now().UTC().Unix()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mu mongoUser
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&mu)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes makes email a unique lookup key.
func (r *UserStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	return err
}

// updateFields maps the non-nil fields of a partial update to $set entries.
func updateFields(upd domain.UserUpdate) bson.M {
	set := bson.M{}
	if upd.NeedsOnboarding != nil {
		set["needs_onboarding"] = *upd.NeedsOnboarding
	}
	if upd.HealthGoals != nil {
		set["health_goals"] = upd.HealthGoals
	}
	if upd.HealthChallenges != nil {
		set["health_challenges"] = *upd.HealthChallenges
	}
	if upd.ActivityLevel != nil {
		set["activity_level"] = *upd.ActivityLevel
	}
	if upd.Age != nil {
		set["age"] = *upd.Age
	}
	if upd.Height != nil {
		set["height"] = *upd.Height
	}
	if upd.Weight != nil {
		set["weight"] = *upd.Weight
	}
	return set
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		PasswordHash:     u.PasswordHash,
		NeedsOnboarding:  u.NeedsOnboarding,
		HealthGoals:      u.HealthGoals,
		HealthChallenges: u.HealthChallenges,
		ActivityLevel:    u.ActivityLevel,
		Age:              u.Age,
		Height:           u.Height,
		Weight:           u.Weight,
		CreatedAt:        u.CreatedAt.Unix(),
		UpdatedAt:        u.UpdatedAt.Unix(),
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:               mu.ID,
		Name:             mu.Name,
		Email:            mu.Email,
		PasswordHash:     mu.PasswordHash,
		NeedsOnboarding:  mu.NeedsOnboarding,
		HealthGoals:      mu.HealthGoals,
		HealthChallenges: mu.HealthChallenges,
		ActivityLevel:    mu.ActivityLevel,
		Age:              mu.Age,
		Height:           mu.Height,
		Weight:           mu.Weight,
		CreatedAt:        unixToTime(mu.CreatedAt),
		UpdatedAt:        unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
