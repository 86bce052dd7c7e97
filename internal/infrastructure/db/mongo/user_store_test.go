package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/wellpath/wellness/internal/core/domain"
)

func userDoc(id, email string, needsOnboarding bool) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Ann"},
		{Key: "email", Value: email},
		{Key: "needs_onboarding", Value: needsOnboarding},
		{Key: "created_at", Value: int64(1700000000)},
		{Key: "updated_at", Value: int64(1700000000)},
	}
}

func TestUserStore_Mock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := mtest.TestDb + "." + usersCollection

	mt.Run("insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := NewUserStore(mt.DB).InsertUser(context.Background(), &domain.User{
			ID:              "user_1",
			Email:           "ann@x.io",
			NeedsOnboarding: true,
			CreatedAt:       time.Unix(1700000000, 0),
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		if got.ID != "user_1" || !got.NeedsOnboarding {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	mt.Run("insert duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))

		_, err := NewUserStore(mt.DB).InsertUser(context.Background(), &domain.User{ID: "user_2", Email: "ann@x.io"})
		if !errors.Is(err, domain.ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("get by email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc("user_1", "ann@x.io", true)))

		got, err := NewUserStore(mt.DB).GetUserByEmail(context.Background(), "ann@x.io")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != "user_1" || got.Email != "ann@x.io" || !got.NeedsOnboarding {
			t.Errorf("unexpected user: %+v", got)
		}
		if got.CreatedAt.Unix() != 1700000000 {
			t.Errorf("unexpected created_at: %v", got.CreatedAt)
		}
	})

	mt.Run("get unknown email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := NewUserStore(mt.DB).GetUserByEmail(context.Background(), "nobody@x.io")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("update returns stored record", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: userDoc("user_1", "ann@x.io", false)},
		})

		got, err := NewUserStore(mt.DB).UpdateUser(context.Background(), "user_1", domain.OnboardingComplete(nil))
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if got.NeedsOnboarding {
			t.Error("expected needs_onboarding=false after update")
		}
	})

	mt.Run("update unknown id", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: nil},
		})

		_, err := NewUserStore(mt.DB).UpdateUser(context.Background(), "user_x", domain.OnboardingComplete(nil))
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUpdateFields_OnlyNonNil(t *testing.T) {
	set := updateFields(domain.OnboardingComplete(nil))
	if len(set) != 1 {
		t.Fatalf("expected only needs_onboarding, got %v", set)
	}
	if set["needs_onboarding"] != false {
		t.Errorf("unexpected needs_onboarding: %v", set["needs_onboarding"])
	}
}

func TestUpdateFields_Profile(t *testing.T) {
	set := updateFields(domain.OnboardingComplete(&domain.OnboardingProfile{
		Goals:         []string{"sleep"},
		ActivityLevel: "light",
		Age:           30,
		Height:        170,
		Weight:        65.5,
	}))

	for _, key := range []string{"needs_onboarding", "health_goals", "health_challenges", "activity_level", "age", "height", "weight"} {
		if _, ok := set[key]; !ok {
			t.Errorf("missing $set key %q", key)
		}
	}
	if set["age"] != 30 {
		t.Errorf("unexpected age: %v", set["age"])
	}
}

func TestMongoUser_RoundTrip(t *testing.T) {
	in := &domain.User{
		ID:          "user_1",
		Name:        "Ann",
		Email:       "ann@x.io",
		HealthGoals: []string{"fitness"},
		Age:         41,
		CreatedAt:   time.Unix(1700000000, 0).UTC(),
		UpdatedAt:   time.Unix(1700000100, 0).UTC(),
	}

	out := toMongoUser(in).toDomain()
	if out.ID != in.ID || out.Email != in.Email || out.Age != in.Age {
		t.Errorf("fields lost: %+v", out)
	}
	if !out.CreatedAt.Equal(in.CreatedAt) || !out.UpdatedAt.Equal(in.UpdatedAt) {
		t.Errorf("timestamps lost: %v / %v", out.CreatedAt, out.UpdatedAt)
	}
	if !unixToTime(0).IsZero() {
		t.Error("zero unix timestamp must map to the zero time")
	}
}
